// Package gravatar checks whether an email address has a Gravatar picture.
// Lookups are best effort: every failure reads as "no gravatar".
package gravatar

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mmynk/rolodex/internal/metrics"
)

// DefaultBaseURL is the public Gravatar endpoint.
const DefaultBaseURL = "https://www.gravatar.com"

// Config tunes the prober.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Prober looks up Gravatar pictures and caches the answers.
type Prober struct {
	http    *resty.Client
	baseURL string
	cache   Cache
	ttl     time.Duration
}

// New creates a Prober. A nil cache disables caching.
func New(cfg Config, cache Cache) *Prober {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Prober{
		http:    client,
		baseURL: baseURL,
		cache:   cache,
		ttl:     cfg.CacheTTL,
	}
}

// Hash is the Gravatar identifier of an email address.
func Hash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// URL returns the picture URL for email at the given size, or false when
// there is no picture or the lookup failed.
func (p *Prober) URL(ctx context.Context, email string, size int) (string, bool) {
	if strings.TrimSpace(email) == "" {
		return "", false
	}
	hash := Hash(email)
	cacheKey := "gravatar:" + hash + ":" + strconv.Itoa(size)

	if p.cache != nil {
		value, hit, err := p.cache.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("Gravatar cache read failed", "error", err)
		} else if hit {
			metrics.GravatarLookups.WithLabelValues("cached").Inc()
			return value, value != ""
		}
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"s": strconv.Itoa(size),
			"d": "404",
		}).
		Head("/avatar/" + hash)
	if err != nil {
		// Not cached: the next request may succeed.
		metrics.GravatarLookups.WithLabelValues("error").Inc()
		slog.Debug("Gravatar lookup failed", "hash", hash, "error", err)
		return "", false
	}

	var value string
	switch resp.StatusCode() {
	case http.StatusOK:
		value = fmt.Sprintf("%s/avatar/%s?s=%d", p.baseURL, hash, size)
		metrics.GravatarLookups.WithLabelValues("found").Inc()
	case http.StatusNotFound:
		metrics.GravatarLookups.WithLabelValues("missing").Inc()
	default:
		metrics.GravatarLookups.WithLabelValues("error").Inc()
		slog.Debug("Gravatar lookup unexpected status", "hash", hash, "status", resp.StatusCode())
		return "", false
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, cacheKey, value, p.ttl); err != nil {
			slog.Warn("Gravatar cache write failed", "error", err)
		}
	}
	return value, value != ""
}
