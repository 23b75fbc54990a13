// Package requestid tags every request with a ULID. The same id appears in
// log lines, error bodies and the X-Request-ID response header.
package requestid

import (
	"context"

	"github.com/oklog/ulid/v2"
)

const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh, lexically sortable id.
func New() string {
	return ulid.Make().String()
}

func WithCtx(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// String returns the id stored in ctx, or "N/A" outside of a request.
func String(ctx context.Context) string {
	if id, ok := FromCtx(ctx); ok {
		return id
	}
	return "N/A"
}
