package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCommands = []PaletteCommand{
	{Name: "flip", Help: "show the back now"},
	{Name: "font", Args: "<pt>", Help: "card word size"},
	{Name: "delay", Args: "<ms>", Help: "flip delay"},
}

func typeText(p Palette, s string) Palette {
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return p
}

func TestPaletteSubmitTrimsInput(t *testing.T) {
	p := NewPalette(testCommands)
	p.Open()
	p = typeText(p, " delay 800 ")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteSubmitMsg{Input: "delay 800"}, cmd())
	assert.False(t, p.Visible())
}

func TestPaletteHintsFilterByPrefix(t *testing.T) {
	p := NewPalette(testCommands)
	p.Open()
	p = typeText(p, "f")
	names := func() []string {
		var out []string
		for _, c := range p.matching() {
			out = append(out, c.Name)
		}
		return out
	}
	assert.Equal(t, []string{"flip", "font"}, names())

	p = typeText(p, "o")
	assert.Equal(t, []string{"font"}, names())
	assert.Contains(t, p.View(), "font <pt>")
	assert.NotContains(t, p.View(), "delay <ms>")
}

func TestPaletteTabCompletesUniqueCommand(t *testing.T) {
	p := NewPalette(testCommands)
	p.Open()
	p = typeText(p, "de")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "delay ", p.input.Value())

	p.input.SetValue("f")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "f", p.input.Value(), "ambiguous prefix is left alone")
}

func TestPaletteEscCancels(t *testing.T) {
	p := NewPalette(testCommands)
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteCancelMsg{}, cmd())
	assert.False(t, p.Visible())
}
