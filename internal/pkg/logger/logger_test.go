package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	Info().Str("port", "8081").Msg("Starting server")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Starting server", entry["message"])
	assert.Equal(t, "8081", entry["port"])
	assert.NotEmpty(t, entry["time"])
}

func TestConfigure_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Debug().Msg("hidden")
	Info().Msg("also hidden")
	Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

// TestWithField verifies the field is stamped on every line the derived
// logger emits. The service binaries rely on this to tag all of their log
// output with the service name.
func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	lgr := WithField("service", "userservice")
	lgr.Info().Msg("first")
	lgr.Info().Msg("second")

	dec := json.NewDecoder(&buf)
	for i := 0; i < 2; i++ {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		assert.Equal(t, "userservice", entry["service"])
	}
}
