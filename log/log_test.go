package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel(" TRACE "))
	assert.Equal(t, DefaultLevel, ParseLevel(""))
	assert.Equal(t, DefaultLevel, ParseLevel("loud"))
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidLevel("info"))
	assert.True(t, ValidLevel("Error"))
	assert.False(t, ValidLevel(""))
	assert.False(t, ValidLevel("verbose"))
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", false)

	component := WithComponent(l.Logger, "pipeline")
	component.Info().Str("stage", "frame").Msg("done")
	component.Debug().Msg("filtered")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pipeline", entry["component"])
	assert.Equal(t, "frame", entry["stage"])
	assert.Equal(t, "done", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", true)
	l.Warn().Msg("careful")

	assert.Contains(t, buf.String(), "careful")
	assert.NotContains(t, buf.String(), `"message"`)
}
