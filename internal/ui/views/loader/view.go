package loader

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flashcards/internal/ui/theme"
)

// SelectedMsg is emitted when the user picks a dataset file.
type SelectedMsg struct{ Path string }

type CancelMsg struct{}

// AllowedTypes lists the extensions the deck module can read.
var AllowedTypes = []string{".csv", ".tsv", ".txt", ".db", ".sqlite", ".sqlite3"}

// Model wraps a file picker for choosing a new dataset.
type Model struct {
	picker  filepicker.Model
	visible bool
	width   int
	height  int
}

func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = AllowedTypes
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = 12
	// esc closes the loader, so it cannot also mean "parent directory".
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	return Model{picker: fp}
}

func (m Model) Visible() bool { return m.visible }

// Open shows the picker rooted at dir, or the working directory when dir is
// empty or missing.
func (m *Model) Open(dir string) tea.Cmd {
	if dir == "" {
		dir = "."
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	m.picker.CurrentDirectory = dir
	m.visible = true
	return m.picker.Init()
}

func (m *Model) Close() { m.visible = false }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if h > 8 {
		m.picker.Height = h - 6
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.visible = false
		return m, func() tea.Msg { return CancelMsg{} }
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.visible = false
		return m, func() tea.Msg { return SelectedMsg{Path: path} }
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}
	body := theme.Title.Render("Load dataset") + "\n" +
		theme.Muted.Render(m.picker.CurrentDirectory) + "\n\n" +
		m.picker.View() + "\n" +
		theme.Muted.Render("enter: open/select  h: up a directory  esc: cancel")
	w := m.width
	if w < 40 {
		w = 64
	}
	return theme.PaneActive.Width(w - 2).Render(body)
}
