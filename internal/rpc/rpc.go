// Package rpc defines the rolodex.v1 Connect services: procedure names,
// request/response messages, handler constructors and typed clients.
//
// Messages are plain Go structs exchanged with a JSON codec, so every client
// and handler built here must carry WithJSON.
package rpc

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

const (
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "rolodex.v1.AuthService"
	// ContactServiceName is the fully-qualified name of the ContactService service.
	ContactServiceName = "rolodex.v1.ContactService"
)

// codecName replaces Connect's protobuf-JSON codec, which only accepts
// proto.Message values.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

// WithJSON installs the message codec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
