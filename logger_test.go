package geoline

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	if Logger() != l {
		t.Error("Logger did not return the configured logger")
	}
	Logger().Debug("hello")
	if buf.Len() == 0 {
		t.Error("nothing logged")
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil did not restore the silent logger")
	}
	Logger().With("a", 1).WithGroup("g").Error("dropped")
}
