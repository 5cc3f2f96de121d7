package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})

	log.Info("catalog loaded", "products", 42)

	assert.Contains(t, buf.String(), "catalog loaded")
	assert.Contains(t, buf.String(), "\"level\":\"INFO\"")
	assert.Contains(t, buf.String(), "\"products\":42")
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"production uses json", "production", true},
		{"development uses pretty", "development", false},
		{"empty env uses pretty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{
				Level:       slog.LevelInfo,
				Environment: tt.environment,
				Writer:      &buf,
			})
			log.Info("probe")

			isJSON := strings.HasPrefix(strings.TrimSpace(buf.String()), "{")
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelWarn
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: level})

	require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	require.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Level:  slog.LevelDebug,
		Format: "pretty",
		Writer: &buf,
	})

	log.Warn("image fallback", "product", "sauna-hat", "resolved", "sauna-hat.webp")

	out := buf.String()
	assert.Contains(t, out, "image fallback")
	assert.Contains(t, out, "product=sauna-hat")
	assert.Contains(t, out, "resolved=sauna-hat.webp")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	log.WithError(assert.AnError).Error("load failed")

	assert.Contains(t, buf.String(), assert.AnError.Error())
}
