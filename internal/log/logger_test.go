package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}
}

func TestInit_FiltersBelowLevel(t *testing.T) {
	t.Cleanup(func() { _ = Init(os.Stderr, "warn") })

	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "info"))

	Debug("hidden")
	Info("catalog loaded", "tricks", 12)
	Warn("skipping record", "trick", "ghost")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "catalog loaded")
	assert.Contains(t, out, "tricks=12")
	assert.Contains(t, out, "trick=ghost")
}

func TestInit_RejectsUnknownLevel(t *testing.T) {
	before := L()
	var buf bytes.Buffer
	assert.Error(t, Init(&buf, "loud"))
	assert.Same(t, before, L())
}
