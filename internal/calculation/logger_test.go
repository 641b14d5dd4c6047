package calculation

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "level=ERROR")
}

func TestNewSlogLogger_NilUsesDefault(t *testing.T) {
	l := NewSlogLogger(nil)
	assert.NotNil(t, l.L)
}
