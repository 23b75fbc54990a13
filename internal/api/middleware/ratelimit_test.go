package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other clients have their own bucket")
	}
}

func TestRateLimiter_ZeroRequestsDisables(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	for range 10 {
		if !rl.Allow("10.0.0.1") {
			t.Fatal("zero request limiter should allow every request")
		}
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	rl.Allow("10.0.0.1")

	rl.cleanup(time.Now().Add(time.Minute))
	if len(rl.limiters) != 0 {
		t.Errorf("limiters = %d, want 0", len(rl.limiters))
	}
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := InjectEnv(testEnv(t))(RateLimit(rl)(next))
	before := testutil.ToFloat64(metrics.LoginRateLimited)

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/token/login", nil)
		r.RemoteAddr = "192.0.2.7:4242"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		if rec.Code != want {
			t.Fatalf("request %d status = %d, want %d", i, rec.Code, want)
		}
	}

	if got := testutil.ToFloat64(metrics.LoginRateLimited) - before; got != 1 {
		t.Errorf("rate limited counter increased by %v, want 1", got)
	}
}
