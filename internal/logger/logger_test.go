package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithWriter(t *testing.T) {
	t.Run("JSON format honours level", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "warn", "json")

		Info("hidden")
		Warn("shown", "rental_id", 3)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[0], &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, float64(3), entry["rental_id"])
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "verbose", "text")

		Debug("hidden")
		Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("Run and file helpers", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "debug", "text")

		WithRun("abc").Info("batch")
		FileResult("write", "/tmp/out.json", 12, errors.New("disk full"))

		out := buf.String()
		assert.Contains(t, out, "run_id=abc")
		assert.Contains(t, out, "File call failed")
		assert.Contains(t, out, "disk full")
	})
}
