package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-dz/foodgram/internal/log"
)

func newTestClient() *http.Client {
	config := DefaultConfig(log.NullLogger())
	config.RetryWaitMin = time.Millisecond
	config.RetryWaitMax = time.Millisecond
	return &http.Client{Transport: New(config).RoundTripper()}
}

func TestRoundTripper(t *testing.T) {
	tests := []struct {
		name      string
		failures  int32
		failWith  int
		wantCalls int32
		wantErr   bool
		wantCode  int
	}{
		{name: "recovers after transient failures", failures: 2, failWith: http.StatusServiceUnavailable, wantCalls: 3, wantCode: http.StatusOK},
		{name: "gives up after retry max", failures: 10, failWith: http.StatusBadGateway, wantCalls: defaultRetryMax + 1, wantErr: true},
		{name: "client errors are not retried", failures: 10, failWith: http.StatusForbidden, wantCalls: 1, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(tt.failWith)
					return
				}
				_, _ = io.WriteString(w, "ok")
			}))
			defer server.Close()

			resp, err := newTestClient().Get(server.URL)
			if tt.wantErr {
				if err == nil {
					_ = resp.Body.Close()
					t.Fatal("expected error, got nil")
				}
			} else {
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				_ = resp.Body.Close()
				if resp.StatusCode != tt.wantCode {
					t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
				}
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("server called %d times, want %d", got, tt.wantCalls)
			}
		})
	}
}
