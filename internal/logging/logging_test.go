package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", false, &buf)
	log.Debug().Str("pair", "USDJPY").Msg("sized")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "USDJPY", line["pair"])
	assert.Equal(t, "sized", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	log := New("nonsense", false, &buf)
	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", true, &buf)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
