package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studydto "flashcards/internal/modules/study/dto"
	apperrors "flashcards/internal/platform/errors"
	"flashcards/internal/ui/components"
	"flashcards/internal/ui/theme"
	cardview "flashcards/internal/ui/views/card"
	loaderview "flashcards/internal/ui/views/loader"
	settingsview "flashcards/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type studyPort interface {
	ReadDataset(ctx context.Context, path string) (studydto.DatasetInput, error)
	Replace(ctx context.Context, dataset studydto.DatasetInput) studydto.Frame
	Flip(ctx context.Context) studydto.Frame
	Expire(ctx context.Context, seq uint64) (studydto.Frame, bool)
	Answer(ctx context.Context, known bool) (studydto.Frame, error)
	ApplySettings(ctx context.Context, input studydto.SettingsInput) (studydto.SettingsOutput, studydto.Frame, error)
	Settings(ctx context.Context) studydto.SettingsOutput
	Frame(ctx context.Context) studydto.Frame
}

// ─── async messages ───────────────────────────────────────────────────────────

// datasetLoadedMsg carries a parsed dataset back to Update, where the session
// is replaced. Reading happens off the update loop; replacing does not.
type datasetLoadedMsg struct {
	path    string
	dataset studydto.DatasetInput
	err     error
	initial bool
}

type flipMsg struct{ seq uint64 }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Known    key.Binding
	Unknown  key.Binding
	Flip     key.Binding
	Load     key.Binding
	Settings key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Known:    key.NewBinding(key.WithKeys("k", "right"), key.WithHelp("k/→", "known")),
		Unknown:  key.NewBinding(key.WithKeys("u", "left"), key.WithHelp("u/←", "unknown")),
		Flip:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip")),
		Load:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load dataset")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Known, k.Unknown, k.Flip, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Known, k.Unknown, k.Flip},
		{k.Load, k.Settings},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes input between the card view
// and its overlays and turns flip requests into ticks. Study state lives
// behind studyPort.
type Model struct {
	dataPath string
	study    studyPort

	cardView     cardview.Model
	settingsView settingsview.Model
	loaderView   loaderview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	// lastSeq is the flip token most recently handed to tea.Tick.
	lastSeq uint64
	status  string
	width   int
	height  int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(dataPath string, study studyPort) Model {
	return Model{
		dataPath:     dataPath,
		study:        study,
		cardView:     cardview.New(study.Settings(context.Background())),
		settingsView: settingsview.New(),
		loaderView:   loaderview.New(),
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(paletteCommands),
		status:       "loading " + dataPath,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.cardView.Init(),
		m.loadCmd(m.dataPath, true),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.settingsView.SetWidth(min(m.width-4, 72))
		m.loaderView.SetSize(min(m.width-4, 80), m.contentHeight())
		m.help.Width = m.width
		m.cardView, _ = m.cardView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
		return m, nil

	case datasetLoadedMsg:
		cmd := m.applyLoaded(msg)
		return m, cmd

	case flipMsg:
		frame, ok := m.study.Expire(context.Background(), msg.seq)
		if !ok {
			return m, nil
		}
		cmd := m.show(frame)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg, settingsview.CancelMsg, loaderview.CancelMsg:
		m.status = "ready"
		return m, nil

	case settingsview.SubmitMsg:
		out, frame, err := m.study.ApplySettings(context.Background(), msg.Input)
		if err != nil {
			m.settingsView.SetError(err.Error())
			return m, nil
		}
		m.settingsView.Close()
		m.cardView.SetSettings(out)
		m.status = "settings applied"
		cmd := m.show(frame)
		return m, cmd

	case loaderview.SelectedMsg:
		m.status = "loading " + msg.Path
		return m, m.loadCmd(msg.Path, false)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (spinner ticks, cursor blinks, directory listings) goes
	// to whichever component asked for it; the rest ignore it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.cardView, cmd = m.cardView.Update(msg)
	cmds = append(cmds, cmd)
	m.palette, cmd = m.palette.Update(msg)
	cmds = append(cmds, cmd)
	m.settingsView, cmd = m.settingsView.Update(msg)
	cmds = append(cmds, cmd)
	m.loaderView, cmd = m.loaderView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Overlays take all input while open.
	var cmd tea.Cmd
	switch {
	case m.palette.Visible():
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	case m.settingsView.Visible():
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	case m.loaderView.Visible():
		m.loaderView, cmd = m.loaderView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Palette):
		cmd = m.palette.Open()
		return m, cmd
	case key.Matches(msg, m.keys.Known):
		cmd = m.answer(true)
		return m, cmd
	case key.Matches(msg, m.keys.Unknown):
		cmd = m.answer(false)
		return m, cmd
	case key.Matches(msg, m.keys.Flip):
		cmd = m.show(m.study.Flip(context.Background()))
		return m, cmd
	case key.Matches(msg, m.keys.Settings):
		cmd = m.settingsView.Open(m.study.Settings(context.Background()))
		return m, cmd
	case key.Matches(msg, m.keys.Load):
		cmd = m.loaderView.Open(m.sourceDir())
		return m, cmd
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(titleBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.settingsView.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.settingsView.View())
	case m.loaderView.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.loaderView.View())
	default:
		content = m.cardView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleBar, content, statusBar)
}

func (m Model) renderTitleBar() string {
	f := m.cardView.Frame()
	source := f.Source
	if source == "" {
		source = m.dataPath
	}
	state := f.State
	if state == "" {
		state = "loading"
	}
	bar := "flashcards  " + theme.Hot.Render(source) + theme.Muted.Render(" │ ") + theme.Muted.Render(state)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

// paletteCommands must stay in sync with the switch in executePalette.
var paletteCommands = []components.PaletteCommand{
	{Name: "known", Help: "mark the card known"},
	{Name: "unknown", Help: "mark the card unknown"},
	{Name: "flip", Help: "show the back now"},
	{Name: "load", Args: "<path>", Help: "study another dataset"},
	{Name: "delay", Args: "<ms>", Help: "set the flip delay"},
	{Name: "font", Args: "<pt>", Help: "set the card word size"},
	{Name: "settings", Help: "open the settings form"},
	{Name: "reset", Help: "restart the current dataset"},
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "known":
		cmd := m.answer(true)
		return m, cmd

	case "unknown":
		cmd := m.answer(false)
		return m, cmd

	case "flip":
		cmd := m.show(m.study.Flip(context.Background()))
		return m, cmd

	case "load":
		if arg == "" {
			m.status = "usage: load <path>"
			return m, nil
		}
		m.status = "loading " + arg
		return m, m.loadCmd(arg, false)

	case "delay", "font":
		if arg == "" {
			m.status = fmt.Sprintf("usage: %s <%s>", parts[0], map[string]string{"delay": "ms", "font": "pt"}[parts[0]])
			return m, nil
		}
		in := settingsInput(m.study.Settings(context.Background()))
		if parts[0] == "delay" {
			in.FlipDelayMS = arg
		} else {
			in.FontSize = arg
		}
		out, frame, err := m.study.ApplySettings(context.Background(), in)
		if err != nil {
			m.status = "settings: " + err.Error()
			return m, nil
		}
		m.cardView.SetSettings(out)
		m.status = "settings applied"
		cmd := m.show(frame)
		return m, cmd

	case "settings":
		cmd := m.settingsView.Open(m.study.Settings(context.Background()))
		return m, cmd

	case "reset":
		source := m.cardView.Frame().Source
		if source == "" {
			source = m.dataPath
		}
		m.status = "reloading " + source
		return m, m.loadCmd(source, false)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// show renders frame and schedules its flip timer. A flip token is scheduled
// at most once; stale ticks are rejected by Expire.
func (m *Model) show(frame studydto.Frame) tea.Cmd {
	m.cardView.SetFrame(frame)
	if frame.Flip == nil || frame.Flip.Seq == m.lastSeq {
		return nil
	}
	m.lastSeq = frame.Flip.Seq
	seq := frame.Flip.Seq
	return tea.Tick(frame.Flip.Delay, func(time.Time) tea.Msg {
		return flipMsg{seq: seq}
	})
}

func (m *Model) answer(known bool) tea.Cmd {
	frame, err := m.study.Answer(context.Background(), known)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoCard) {
			m.status = "no card in play; press l to load a dataset"
		} else {
			m.status = "answer: " + err.Error()
		}
		return nil
	}
	if frame.Finished() {
		m.status = fmt.Sprintf("finished: %d known, %d unknown", frame.Known, frame.Unknown)
	}
	return m.show(frame)
}

func (m *Model) applyLoaded(msg datasetLoadedMsg) tea.Cmd {
	ctx := context.Background()
	if msg.err != nil {
		if !msg.initial {
			m.status = "load failed: " + msg.err.Error()
			return nil
		}
		m.cardView.SetNote("no data: " + msg.err.Error())
		m.status = "no data: " + msg.err.Error()
		return m.show(m.study.Replace(ctx, studydto.DatasetInput{Source: msg.path}))
	}
	m.cardView.SetNote("")
	m.status = fmt.Sprintf("loaded %d cards from %s", len(msg.dataset.Cards), msg.dataset.Source)
	return m.show(m.study.Replace(ctx, msg.dataset))
}

func (m Model) loadCmd(path string, initial bool) tea.Cmd {
	return func() tea.Msg {
		ds, err := m.study.ReadDataset(context.Background(), path)
		return datasetLoadedMsg{path: path, dataset: ds, err: err, initial: initial}
	}
}

// sourceDir is where the loader opens: next to the current dataset.
func (m Model) sourceDir() string {
	source := m.cardView.Frame().Source
	if source == "" {
		source = m.dataPath
	}
	if i := strings.LastIndex(source, "#"); i > 0 {
		source = source[:i]
	}
	return filepath.Dir(source)
}

func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func settingsInput(s studydto.SettingsOutput) studydto.SettingsInput {
	return studydto.SettingsInput{
		FlipDelayMS: fmt.Sprint(s.FlipDelay.Milliseconds()),
		FontSize:    fmt.Sprint(s.FontSize),
		Background:  s.Background,
		CardFront:   s.CardFront,
		CardBack:    s.CardBack,
	}
}
