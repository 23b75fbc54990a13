package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = time.Hour
	limiterCleanupInterval = 5 * time.Minute
)

// RateLimiter is a per-client token bucket limiter. Each client may burst up
// to requests and regains one token per window.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	window   time.Duration
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(window),
		burst:    requests,
		window:   window,
	}
}

// Allow reports whether the client identified by key may proceed. A limiter
// built with zero requests allows everything.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.burst <= 0 {
		return true
	}

	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Run evicts idle clients until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now().Add(-limiterIdleTTL))
		case <-ctx.Done():
			return
		}
	}
}

func (rl *RateLimiter) cleanup(threshold time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, key)
		}
	}
}

// RateLimit rejects clients that exceed rl with 429.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.Allow(clientIP(r)) {
				next.ServeHTTP(w, r)
				return
			}

			env := env.EnvFromCtx(r.Context())
			requestID := requestid.String(r.Context())
			env.Logger.WarnContext(r.Context(), "rate limit exceeded")
			metrics.LoginRateLimited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(max(rl.window, time.Second)/time.Second)))
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		})
	}
}

// clientIP is the host part of RemoteAddr. chi's RealIP middleware rewrites
// RemoteAddr from proxy headers before this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
