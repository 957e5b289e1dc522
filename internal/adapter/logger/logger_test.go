package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "production", "info", nil)

	l.Info("Bike synced", map[string]interface{}{"bike_id": "b1", "components": 9})

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Bike synced", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "b1", rec["bike_id"])
	assert.Equal(t, float64(9), rec["components"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "development", "warn", nil)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", map[string]interface{}{"k": "v"})
	l.Error("shown too", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 2, strings.Count(out, "shown"))
	assert.Contains(t, out, "k=v")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("DEBUG").String())
	assert.Equal(t, "WARN", parseLevel("warning").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}

func TestClose_WithoutFile(t *testing.T) {
	l := New(Config{Env: "development"})
	assert.NoError(t, l.Close())
}
