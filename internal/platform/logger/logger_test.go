package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFileWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flashcards.log")

	log, err := NewFile(path, "debug")
	require.NoError(t, err)
	log.Info("dataset loaded", zap.Int("pairs", 3))
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"dataset loaded"`)
	assert.Contains(t, string(raw), `"pairs":3`)
	assert.Contains(t, string(raw), `"level":"INFO"`)
}

func TestNewFileRejectsUnknownLevel(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "x.log"), "chatty")
	require.Error(t, err)
}
