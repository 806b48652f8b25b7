package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig holds per-client throttling settings. Values come from the
// application config (RATE_LIMIT_RPS, RATE_LIMIT_BURST); there are no
// package-level defaults.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// Buckets idle longer than this are dropped to keep the store bounded.
const bucketTTL = 10 * time.Minute

// clientBucket is a token bucket for a single client IP.
type clientBucket struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// take refills the bucket for the elapsed time, then attempts to consume one
// token. On refusal it reports the whole seconds until a token is available.
func (b *clientBucket) take(cfg RateLimitConfig, now time.Time) (ok bool, retryAfter int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens += elapsed * cfg.RequestsPerSecond
	if max := float64(cfg.BurstSize); b.tokens > max {
		b.tokens = max
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if cfg.RequestsPerSecond <= 0 {
		return false, 1
	}
	return false, int((1-b.tokens)/cfg.RequestsPerSecond) + 1
}

type bucketStore struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	cfg     RateLimitConfig
	swept   time.Time
}

func newBucketStore(cfg RateLimitConfig) *bucketStore {
	return &bucketStore{
		buckets: make(map[string]*clientBucket),
		cfg:     cfg,
		swept:   time.Now(),
	}
}

func (s *bucketStore) get(key string, now time.Time) *clientBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.swept) > bucketTTL {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > bucketTTL {
				delete(s.buckets, k)
			}
		}
		s.swept = now
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &clientBucket{tokens: float64(s.cfg.BurstSize), lastSeen: now}
		s.buckets[key] = b
	}
	return b
}

// RateLimit throttles requests per client IP using a token bucket. A refused
// request gets 429 with Retry-After and X-RateLimit-* headers.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 1
	}
	store := newBucketStore(cfg)
	limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limit)

			ok, retryAfter := store.get(c.RealIP(), now).take(cfg, now)
			if !ok {
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
