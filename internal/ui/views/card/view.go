package card

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studydto "flashcards/internal/modules/study/dto"
	"flashcards/internal/ui/theme"
)

// Model renders the current card and score. It holds no study state of its
// own; the app model pushes frames and settings into it.
type Model struct {
	frame    studydto.Frame
	settings studydto.SettingsOutput
	spinner  spinner.Model
	loading  bool
	note     string
	width    int
	height   int
}

func New(settings studydto.SettingsOutput) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{settings: settings, spinner: sp, loading: true}
}

// Init starts the spinner shown until the first dataset arrives.
func (m Model) Init() tea.Cmd { return m.spinner.Tick }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// SetFrame replaces what is shown and ends the initial loading state.
func (m *Model) SetFrame(f studydto.Frame) {
	m.frame = f
	m.loading = false
}

func (m *Model) SetSettings(s studydto.SettingsOutput) { m.settings = s }

// SetNote sets the line shown in place of a card when there is no data.
func (m *Model) SetNote(note string) { m.note = note }

func (m Model) Frame() studydto.Frame { return m.frame }

func (m Model) View() string {
	bg := lipgloss.NewStyle().Background(lipgloss.Color(m.settings.Background))
	if m.loading {
		return bg.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading cards…"))
	}

	score := m.renderScore()
	body := lipgloss.JoinVertical(lipgloss.Center, score, "", m.renderCard())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.settings.Background)))
}

func (m Model) renderScore() string {
	unknown := theme.Bad.Render(fmt.Sprintf("✗ Unknown: %d", m.frame.Unknown))
	known := theme.Good.Render(fmt.Sprintf("✓ Known: %d", m.frame.Known))
	left := theme.Muted.Render(fmt.Sprintf("%d left", m.frame.Remaining))
	return lipgloss.JoinHorizontal(lipgloss.Top, unknown, "    ", left, "    ", known)
}

func (m Model) renderCard() string {
	width := m.cardWidth()
	f := m.frame

	if f.Finished() {
		style := theme.Card(m.settings.CardFront, theme.ContrastText(m.settings.CardFront), m.settings.FontSize).Width(width)
		if f.Known == 0 && f.Unknown == 0 && f.Remaining == 0 {
			msg := "No data"
			if m.note != "" {
				msg = m.note
			}
			return style.Render(lipgloss.JoinVertical(lipgloss.Center,
				theme.Hot.Render("NO CARDS"), "", msg, "", "press l to load a dataset"))
		}
		return style.Render(lipgloss.JoinVertical(lipgloss.Center,
			theme.Good.Render("FINISH!"), "", theme.Good.Render("All words learned!")))
	}

	bg := m.settings.CardFront
	if f.State == "back" {
		bg = m.settings.CardBack
	}
	title := lipgloss.NewStyle().Italic(true).Render(f.Title())
	word := lipgloss.NewStyle().Bold(true).Render(f.Text())
	return theme.Card(bg, theme.ContrastText(bg), m.settings.FontSize).Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, "", word))
}

func (m Model) cardWidth() int {
	w := m.width * 2 / 3
	if w < 24 {
		w = 24
	}
	return w
}
