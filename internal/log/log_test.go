package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With(slog.String("component", "recipes"))

	ctx := AppendCtx(context.Background(), slog.String("log_id", "01J9Z3W6Q6T2B9N4M0KX2V7C8D"))
	ctx = AppendCtx(ctx, slog.Int64("user-id", 7))
	logger.DebugContext(ctx, "dropped below level")
	logger.InfoContext(ctx, "creating recipe")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record: %v", err)
	}
	if record["log_id"] != "01J9Z3W6Q6T2B9N4M0KX2V7C8D" {
		t.Errorf("log_id = %v", record["log_id"])
	}
	if record["component"] != "recipes" {
		t.Errorf("component = %v, want recipes", record["component"])
	}
	if record["user-id"] != float64(7) {
		t.Errorf("user-id = %v, want 7", record["user-id"])
	}
}

func TestAppendCtx_SiblingsIsolated(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	parent := AppendCtx(context.Background(), slog.String("log_id", "a"))
	parent = AppendCtx(parent, slog.String("route", "/api/recipes/"))
	first := AppendCtx(parent, slog.Int64("user-id", 1))
	_ = AppendCtx(parent, slog.Int64("user-id", 2))

	logger.InfoContext(first, "listing")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record: %v", err)
	}
	if record["user-id"] != float64(1) {
		t.Errorf("user-id = %v, want 1", record["user-id"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
