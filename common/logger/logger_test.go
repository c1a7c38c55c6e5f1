package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_TeesToSink(t *testing.T) {
	var buf bytes.Buffer

	l, err := Initialize("production", &buf)
	require.NoError(t, err)
	require.Same(t, l, Log)

	l.Info("order created", zap.String("order_id", "abc"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "order created", entry["msg"])
	assert.Equal(t, "abc", entry["order_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitialize_Development(t *testing.T) {
	l, err := Initialize("development", nil)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
