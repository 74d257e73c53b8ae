package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: FormatJSON, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("builder")
	logger.Debug().Str("variant", "lucy").Msg("variant written")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "builder", entry["component"])
	require.Equal(t, "lucy", entry["variant"])
	require.Equal(t, "debug", entry["level"])
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "warn", Format: FormatJSON, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	Component("test").Info().Msg("hidden")
	require.Zero(t, buf.Len())
}

func TestInitRejectsBadInput(t *testing.T) {
	require.Error(t, Init(Config{Level: "loud"}))
	require.Error(t, Init(Config{Format: "xml"}))
}
