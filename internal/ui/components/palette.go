package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flashcards/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

type PaletteCancelMsg struct{}

// PaletteCommand is one entry of the command table the palette completes
// against. Args is shown as usage only.
type PaletteCommand struct {
	Name string
	Args string
	Help string
}

func (c PaletteCommand) usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	usageStyle = lipgloss.NewStyle().Foreground(theme.Lavender)
	hintStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

const maxHints = 6

// Palette is a command line overlay with prefix hints and tab completion.
type Palette struct {
	input    textinput.Model
	commands []PaletteCommand
	visible  bool
	width    int
}

func NewPalette(commands []PaletteCommand) Palette {
	ti := textinput.New()
	ti.Placeholder = "command…"
	ti.CharLimit = 256
	ti.Prompt = ": "
	return Palette{input: ti, commands: commands}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty line and focuses it.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			p.complete()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(p.input.View() + "\n")
	if matching := p.matching(); len(matching) > 0 {
		sb.WriteString("\n")
		for _, c := range matching {
			sb.WriteString(usageStyle.Width(16).Render(c.usage()) + hintStyle.Render(c.Help) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// matching returns the commands whose name starts with the first word typed.
// Once arguments are being typed only the exact command is listed.
func (p Palette) matching() []PaletteCommand {
	value := strings.ToLower(strings.TrimLeft(p.input.Value(), " "))
	name, _, typingArgs := strings.Cut(value, " ")
	var out []PaletteCommand
	for _, c := range p.commands {
		if typingArgs && c.Name != name {
			continue
		}
		if strings.HasPrefix(c.Name, name) {
			out = append(out, c)
			if len(out) == maxHints {
				break
			}
		}
	}
	return out
}

// complete fills in the command name when exactly one command matches.
func (p *Palette) complete() {
	matching := p.matching()
	if len(matching) != 1 || strings.Contains(strings.TrimLeft(p.input.Value(), " "), " ") {
		return
	}
	c := matching[0]
	value := c.Name
	if c.Args != "" {
		value += " "
	}
	p.input.SetValue(value)
	p.input.CursorEnd()
}
