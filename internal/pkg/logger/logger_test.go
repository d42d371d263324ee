package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSONOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	Warn().Str("component", "test").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "warn", entry["level"])
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Configure(Config{Level: "verbose", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
