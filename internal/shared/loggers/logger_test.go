package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONAtLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldReportID, "rep-1").Msg("report generated")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug line should be filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "rep-1", entry[FieldReportID])
	assert.Equal(t, "report generated", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_ReturnsContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	ctx := logger.WithContext(context.Background())
	Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}
