// Package http builds the retrying client used for outbound calls, such as
// the object storage API.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryMax     = 3
	defaultRetryWaitMin = 100 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	defaultTimeout      = 30 * time.Second
)

type HTTP struct {
	*retryablehttp.Client
}

// DefaultConfig retries transient failures with exponential backoff and logs
// each retry to logger. A nil logger disables retry logging.
func DefaultConfig(logger *slog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.RetryWaitMin = defaultRetryWaitMin
	client.RetryWaitMax = defaultRetryWaitMax
	client.HTTPClient.Timeout = defaultTimeout
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}
	return client
}

func New(client *retryablehttp.Client) *HTTP {
	return &HTTP{Client: client}
}

// RoundTripper exposes the retrying client as a transport for SDKs that
// accept a plain http.RoundTripper.
func (h *HTTP) RoundTripper() http.RoundTripper {
	return &retryablehttp.RoundTripper{Client: h.Client}
}
