package loader

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFallsBackToWorkingDirectory(t *testing.T) {
	m := New()
	cmd := m.Open(filepath.Join(t.TempDir(), "missing"))
	require.NotNil(t, cmd)
	assert.True(t, m.Visible())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, m.picker.CurrentDirectory)
}

func TestOpenUsesGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	m := New()
	m.Open(dir)
	assert.Equal(t, dir, m.picker.CurrentDirectory)
}

func TestEscCancels(t *testing.T) {
	m := New()
	m.Open(t.TempDir())
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok)
	assert.False(t, m.Visible())
}

func TestHiddenLoaderIgnoresInput(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
