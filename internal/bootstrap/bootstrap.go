package bootstrap

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	deckinadapter "flashcards/internal/modules/deck/adapter/in"
	deckoutadapter "flashcards/internal/modules/deck/adapter/out"
	deckservice "flashcards/internal/modules/deck/service"
	deckusecase "flashcards/internal/modules/deck/usecase"
	studyinadapter "flashcards/internal/modules/study/adapter/in"
	studyoutadapter "flashcards/internal/modules/study/adapter/out"
	studydomain "flashcards/internal/modules/study/domain"
	studyservice "flashcards/internal/modules/study/service"
	studyusecase "flashcards/internal/modules/study/usecase"
	"flashcards/internal/platform/clock"
	"flashcards/internal/platform/config"
	"flashcards/internal/platform/id"
	"flashcards/internal/platform/logger"
	"flashcards/internal/platform/random"
	uiapp "flashcards/internal/ui/app"
)

type App struct {
	Config   config.Config
	Log      *zap.Logger
	DeckCLI  deckinadapter.CLIHandler
	StudyTUI studyinadapter.TUIHandler
}

func New(cfg config.Config) (*App, error) {
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	log, err := logger.NewFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	return newApp(cfg, log, settings), nil
}

func newApp(cfg config.Config, log *zap.Logger, settings studydomain.Settings) *App {
	deckUC := deckusecase.NewInteractor(deckservice.NewDeckService(
		deckoutadapter.NewDelimitedReader(),
		deckoutadapter.NewSQLiteReader(),
	))

	studySvc := studyservice.NewStudyService(
		clock.SystemClock{},
		id.RandomHex{},
		random.Uniform{},
		studyoutadapter.NewDeckLoaderAdapter(deckUC),
	)
	studyUC := studyusecase.NewInteractor(studySvc, log.Named("study"), settings)

	return &App{
		Config:   cfg,
		Log:      log,
		DeckCLI:  deckinadapter.NewCLIHandler(deckUC),
		StudyTUI: studyinadapter.NewTUIHandler(studyUC),
	}
}

// SettingsFromConfig validates the startup study settings the same way the
// settings form does. Blank colors fall back to the defaults.
func SettingsFromConfig(cfg config.Config) (studydomain.Settings, error) {
	defaults := studydomain.Settings{
		FlipDelay:  config.DefaultFlipDelayMS * time.Millisecond,
		FontSize:   config.DefaultFontSize,
		Background: config.DefaultBackground,
		CardFront:  config.DefaultCardFront,
		CardBack:   config.DefaultCardBack,
	}
	s, err := studydomain.ParseSettings(defaults, studydomain.SettingsText{
		FlipDelayMS: strconv.Itoa(cfg.FlipDelayMS),
		FontSize:    strconv.Itoa(cfg.FontSize),
		Background:  cfg.Colors.Background,
		CardFront:   cfg.Colors.CardFront,
		CardBack:    cfg.Colors.CardBack,
	})
	if err != nil {
		return studydomain.Settings{}, fmt.Errorf("config settings: %w", err)
	}
	return s, nil
}

func (a *App) Close() {
	_ = a.Log.Sync()
}

func RunTUI(app *App) error {
	app.Log.Info("tui starting", zap.String("data_path", app.Config.DataPath))
	model := uiapp.NewModel(app.Config.DataPath, app.StudyTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if err != nil {
		app.Log.Error("tui exited", zap.Error(err))
	}
	return err
}
