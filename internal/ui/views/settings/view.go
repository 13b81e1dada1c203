package settings

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studydto "flashcards/internal/modules/study/dto"
	"flashcards/internal/ui/theme"
)

// SubmitMsg carries the form values as typed. Validation happens in the
// study use-case; a rejection comes back through SetError.
type SubmitMsg struct{ Input studydto.SettingsInput }

type CancelMsg struct{}

const (
	fieldDelay = iota
	fieldFont
	fieldBackground
	fieldFront
	fieldBack
	fieldCount
)

var labels = [fieldCount]string{
	"Card flip delay (ms)",
	"Card word size (pt)",
	"Background color",
	"Card front color",
	"Card back color",
}

// Model is the settings form overlay.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	visible bool
	err     string
	width   int
}

func New() Model {
	var m Model
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldDelay].Placeholder = "3000"
	m.inputs[fieldFont].Placeholder = "60"
	for _, i := range []int{fieldBackground, fieldFront, fieldBack} {
		m.inputs[i].Placeholder = "#rrggbb"
	}
	return m
}

func (m Model) Visible() bool { return m.visible }

// Open shows the form prefilled with the current settings.
func (m *Model) Open(current studydto.SettingsOutput) tea.Cmd {
	m.visible = true
	m.err = ""
	m.inputs[fieldDelay].SetValue(strconv.FormatInt(current.FlipDelay.Milliseconds(), 10))
	m.inputs[fieldFont].SetValue(strconv.Itoa(current.FontSize))
	m.inputs[fieldBackground].SetValue(current.Background)
	m.inputs[fieldFront].SetValue(current.CardFront)
	m.inputs[fieldBack].SetValue(current.CardBack)
	return m.focusOn(fieldDelay)
}

// Close hides the form after a successful apply.
func (m *Model) Close() {
	m.visible = false
	m.err = ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// SetError shows an inline validation message and keeps the form open.
func (m *Model) SetError(msg string) { m.err = msg }

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg { return CancelMsg{} }
		case "tab", "down":
			return m, m.focusOn((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.focusOn((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			input := m.values()
			return m, func() tea.Msg { return SubmitMsg{Input: input} }
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	for i, in := range m.inputs {
		label := lipgloss.NewStyle().Width(24).Render(labels[i])
		line := label + in.View()
		if i >= fieldBackground {
			line += "  " + swatch(in.Value())
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	if m.err != "" {
		sb.WriteString(theme.Bad.Render(m.err) + "\n")
	}
	sb.WriteString(theme.Muted.Render("tab: next field  enter: apply  esc: cancel"))

	w := m.width
	if w < 48 {
		w = 56
	}
	return theme.PaneActive.Width(w - 2).Render(sb.String())
}

func (m Model) values() studydto.SettingsInput {
	return studydto.SettingsInput{
		FlipDelayMS: m.inputs[fieldDelay].Value(),
		FontSize:    m.inputs[fieldFont].Value(),
		Background:  m.inputs[fieldBackground].Value(),
		CardFront:   m.inputs[fieldFront].Value(),
		CardBack:    m.inputs[fieldBack].Value(),
	}
}

func (m *Model) focusOn(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func swatch(color string) string {
	color = strings.TrimSpace(color)
	if !theme.ValidColor(color) {
		return theme.Muted.Render("      ")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(theme.ContrastText(color))).
		Render(" " + color + " ")
}
