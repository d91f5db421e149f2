package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogHandler(t *testing.T) {
	var buf bytes.Buffer

	handler, err := NewLogHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	slog.New(handler).Info("catalog loaded", "records", 3)
	assert.Contains(t, buf.String(), `"records":3`)

	_, err = NewLogHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func captureDefaultLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	handler, err := NewLogHandler(&buf, level, "json")
	require.NoError(t, err)

	previous := slog.Default()
	slog.SetDefault(slog.New(handler))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		log       func()
		name      string
		wantLevel string
		wantAttrs []string
	}{
		{
			name:      "warn",
			log:       func() { LogWarn("Skipping malformed catalog line", Fields{"line": 5}) },
			wantLevel: `"level":"WARN"`,
			wantAttrs: []string{`"msg":"Skipping malformed catalog line"`, `"line":5`},
		},
		{
			name:      "info",
			log:       func() { LogInfo("Catalog ready", Fields{"records": 3, "path": "items.csv"}) },
			wantLevel: `"level":"INFO"`,
			wantAttrs: []string{`"records":3`, `"path":"items.csv"`},
		},
		{
			name:      "debug",
			log:       func() { LogDebug("Resolved query", Fields{"query": "ap"}) },
			wantLevel: `"level":"DEBUG"`,
			wantAttrs: []string{`"query":"ap"`},
		},
		{
			name:      "error",
			log:       func() { LogError(errors.New("disk gone"), "Failed to close catalog file", nil) },
			wantLevel: `"level":"ERROR"`,
			wantAttrs: []string{`"error":"disk gone"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDefaultLogger(t, slog.LevelDebug)

			tt.log()

			assert.Contains(t, buf.String(), tt.wantLevel)
			for _, attr := range tt.wantAttrs {
				assert.Contains(t, buf.String(), attr)
			}
		})
	}
}

func TestLogHelpers_RespectLevel(t *testing.T) {
	buf := captureDefaultLogger(t, slog.LevelWarn)

	LogInfo("Catalog ready", Fields{"records": 3})
	LogDebug("Resolved query", nil)
	assert.Empty(t, buf.String())

	LogWarn("Skipping malformed catalog line", nil)
	assert.Contains(t, buf.String(), "Skipping malformed catalog line")
}
