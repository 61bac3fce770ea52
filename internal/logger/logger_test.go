package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithOutputsWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.log")
	log, err := NewWithOutputs("info", path)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("texture loaded", zap.String("planet", "earth"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "texture loaded", entry["msg"])
	assert.Equal(t, "earth", entry["planet"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithOutputsRejectsBadLevel(t *testing.T) {
	_, err := NewWithOutputs("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestNewWithOutputsReportsUnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := NewWithOutputs("info", filepath.Join(blocker, "viewer.log"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "logger: mkdir")
}
