package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/rolodex/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its outcome in the RPC metrics.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			accountID := GetAccountID(ctx) // empty if pre-auth

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			duration := elapsed.Milliseconds()
			metrics.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

			if err != nil {
				code := connect.CodeOf(err)
				metrics.RPCRequests.WithLabelValues(procedure, code.String()).Inc()

				var connectErr *connect.Error
				if errors.As(err, &connectErr) && code != connect.CodeInternal && code != connect.CodeUnknown {
					slog.Warn("RPC error",
						"procedure", procedure,
						"code", code,
						"error", connectErr.Message(),
						"account_id", accountID,
						"duration_ms", duration,
					)
				} else {
					slog.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"account_id", accountID,
						"duration_ms", duration,
					)
				}
			} else {
				metrics.RPCRequests.WithLabelValues(procedure, "ok").Inc()
				slog.Info("RPC ok",
					"procedure", procedure,
					"account_id", accountID,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}
