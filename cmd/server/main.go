package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/rolodex/internal/auth"
	"github.com/mmynk/rolodex/internal/avatar"
	"github.com/mmynk/rolodex/internal/blob"
	"github.com/mmynk/rolodex/internal/config"
	"github.com/mmynk/rolodex/internal/contact"
	"github.com/mmynk/rolodex/internal/gravatar"
	"github.com/mmynk/rolodex/internal/metrics"
	"github.com/mmynk/rolodex/internal/middleware"
	"github.com/mmynk/rolodex/internal/rpc"
	"github.com/mmynk/rolodex/internal/service"
	"github.com/mmynk/rolodex/internal/storage/sqlstore"
	"github.com/mmynk/rolodex/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	blobs, err := blob.NewLocal(cfg.BlobRoot, cfg.PublicBaseURL+"/blobs")
	if err != nil {
		slog.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	cache, closeCache := gravatarCache(cfg)
	defer closeCache()
	prober := gravatar.New(gravatar.Config{
		BaseURL:  cfg.GravatarBaseURL,
		Timeout:  cfg.GravatarTimeout,
		CacheTTL: cfg.GravatarCacheTTL,
	}, cache)

	contacts := contact.NewService(store,
		contact.WithBlobs(blobs),
		contact.WithGravatar(prober),
		contact.WithAvatars(avatar.NewProcessor(blobs)),
	)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	mux := http.NewServeMux()

	// Register Connect services
	authPath, authHandler := rpc.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, slog.Default()),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(authPath, authHandler)

	contactPath, contactHandler := rpc.NewContactServiceHandler(
		service.NewContactService(contacts),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager), middleware.LoggingInterceptor()),
		connect.WithReadMaxBytes(service.MaxRequestBytes),
	)
	mux.Handle(contactPath, contactHandler)

	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/blobs/", http.StripPrefix("/blobs", blobs.Handler()))

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Connect server starting", "address", addr, "url", cfg.PublicBaseURL)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (*sqlstore.Store, error) {
	if cfg.DBDriver == sqlstore.DriverPostgres {
		return sqlstore.Open(sqlstore.DriverPostgres, cfg.DBDSN)
	}
	return sqlstore.New(cfg.DBPath)
}

// gravatarCache shares probe results through Redis when REDIS_ADDR is set and
// keeps them in process otherwise.
func gravatarCache(cfg *config.Config) (gravatar.Cache, func()) {
	if cfg.RedisAddr == "" {
		return gravatar.NewMemoryCache(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cache, err := gravatar.NewRedisCache(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Warn("Redis unavailable, caching Gravatar lookups in memory", "addr", cfg.RedisAddr, "error", err)
		return gravatar.NewMemoryCache(), func() {}
	}
	slog.Info("Gravatar cache connected", "addr", cfg.RedisAddr)
	return cache, func() { cache.Close() }
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
