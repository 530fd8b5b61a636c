package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("content")
	logger.Debug().Str("dir", "docs").Msg("discovering")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "content", entry["component"])
	assert.Equal(t, "docs", entry["dir"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "discovering", entry["message"])
}

func TestConfigureLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NAVCHECK_LOG_LEVEL", "debug")
	Configure(Config{Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
