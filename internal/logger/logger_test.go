package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	Init("debug", "json")
	assert.True(t, L.Enabled(ctx, slog.LevelDebug))

	Init("warn", "text")
	assert.False(t, L.Enabled(ctx, slog.LevelInfo))
	assert.True(t, L.Enabled(ctx, slog.LevelWarn))
}
