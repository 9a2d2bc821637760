// Package config reads server settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the server.
type Config struct {
	Port     int
	LogLevel string

	DBDriver string
	DBPath   string
	DBDSN    string

	JWTSecret string
	TokenTTL  time.Duration

	BlobRoot      string
	PublicBaseURL string

	GravatarBaseURL  string
	GravatarTimeout  time.Duration
	GravatarCacheTTL time.Duration
	RedisAddr        string
}

// Load reads .env (if any) and then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is fine.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBPath:          getEnv("DB_PATH", "./data/rolodex.db"),
		DBDSN:           getEnv("DB_DSN", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		BlobRoot:        getEnv("BLOB_ROOT", "./data/blobs"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		GravatarBaseURL: getEnv("GRAVATAR_BASE_URL", "https://www.gravatar.com"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.GravatarTimeout, err = getDuration("GRAVATAR_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.GravatarCacheTTL, err = getDuration("GRAVATAR_CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DBDSN == "" {
			return nil, errors.New("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		slog.Warn("JWT_SECRET not set, using an insecure development secret")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
