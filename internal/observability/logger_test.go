package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oliverbestmann/house-roads/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_JSON(t *testing.T) {
	buf := new(bytes.Buffer)

	logger, err := newLogger(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("house selected", zap.Int("house", 3))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "house selected", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, 3.0, entry["house"])
}

func TestNewLogger_Console(t *testing.T) {
	buf := new(bytes.Buffer)

	logger, err := newLogger(config.LoggerConfig{Level: "debug", Format: "console"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Debug("no house selected")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "no house selected")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(config.LoggerConfig{Level: "loud"}, zapcore.AddSync(new(bytes.Buffer)))
	assert.ErrorContains(t, err, "parse log level")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house-roads.log")

	logger, err := newLogger(config.LoggerConfig{
		Level:   "info",
		Format:  "console",
		LogFile: path,
		MaxSize: 1,
	}, zapcore.AddSync(new(bytes.Buffer)))
	require.NoError(t, err)

	logger.Warn("map loaded", zap.String("source", "houses.json"))
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry))
	assert.Equal(t, "map loaded", entry["msg"])
	assert.Equal(t, "houses.json", entry["source"])
}
