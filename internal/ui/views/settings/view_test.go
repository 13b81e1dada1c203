package settings

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studydto "flashcards/internal/modules/study/dto"
)

func current() studydto.SettingsOutput {
	return studydto.SettingsOutput{
		FlipDelay:  3 * time.Second,
		FontSize:   60,
		Background: "#B1DDC6",
		CardFront:  "#FFFFFF",
		CardBack:   "#2C3E50",
	}
}

func TestOpenPrefillsAndSubmits(t *testing.T) {
	m := New()
	m.Open(current())
	require.True(t, m.Visible())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	submit, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, studydto.SettingsInput{
		FlipDelayMS: "3000",
		FontSize:    "60",
		Background:  "#B1DDC6",
		CardFront:   "#FFFFFF",
		CardBack:    "#2C3E50",
	}, submit.Input)
	assert.True(t, m.Visible(), "form stays open until the apply succeeds")
}

func TestTypingEditsFocusedField(t *testing.T) {
	m := New()
	m.Open(current())
	m.inputs[fieldDelay].SetValue("")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("15x")})
	assert.Equal(t, "15x", m.values().FlipDelayMS)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldFont, m.focus)
}

func TestErrorIsRenderedInline(t *testing.T) {
	m := New()
	m.Open(current())
	m.SetError("flip delay must be a whole number of milliseconds")
	assert.Contains(t, m.View(), "whole number")
}

func TestEscCancels(t *testing.T) {
	m := New()
	m.Open(current())
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok)
	assert.False(t, m.Visible())
}
