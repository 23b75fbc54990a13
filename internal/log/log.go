// Package log builds the JSON slog loggers used across the service and lets
// request-scoped attributes ride along on the context.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

type attrsKey struct{}

// ContextHandler adds the attributes stored by AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{h.Handler.WithGroup(name)}
}

// AppendCtx returns a context whose log records carry attr. Sibling contexts
// derived from the same parent never see each other's attributes.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	attrs, _ := parent.Value(attrsKey{}).([]slog.Attr)
	return context.WithValue(parent, attrsKey{}, append(slices.Clip(attrs), attr))
}

// New writes JSON records at or above level to w.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(ContextHandler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	})
}

func NullLogger() *slog.Logger {
	return slog.New(ContextHandler{Handler: slog.DiscardHandler})
}

// ParseLevel converts a config level name into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
