package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/rolodex/internal/auth"
	"github.com/mmynk/rolodex/internal/models"
)

type ping struct{}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	account := models.NewAccount("ada@example.com", "Ada", "hash")
	token, err := jwtManager.Generate(account)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var gotID models.AccountID
	var gotEmail string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		gotID = GetAccountID(ctx)
		gotEmail = GetEmail(ctx)
		return connect.NewResponse(&ping{}), nil
	}
	call := RequireAuth(jwtManager)(next)

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{"valid token", "Bearer " + token, true},
		{"lowercase scheme", "bearer " + token, true},
		{"missing header", "", false},
		{"wrong scheme", "Basic " + token, false},
		{"empty token", "Bearer ", false},
		{"garbage token", "Bearer nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotEmail = "", ""
			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := call(context.Background(), req)
			if !tt.ok {
				var connectErr *connect.Error
				if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
					t.Fatalf("expected unauthenticated error, got %v", err)
				}
				if gotID != "" {
					t.Error("handler should not run without a valid token")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotID != account.ID {
				t.Errorf("expected account %s, got %s", account.ID, gotID)
			}
			if gotEmail != account.Email {
				t.Errorf("expected email %s, got %s", account.Email, gotEmail)
			}
		})
	}
}

func TestGetAccountIDWithoutAuth(t *testing.T) {
	if id := GetAccountID(context.Background()); id != "" {
		t.Errorf("expected empty account id, got %q", id)
	}
}
