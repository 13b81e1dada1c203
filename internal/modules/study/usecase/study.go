package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"flashcards/internal/modules/study/domain"
	"flashcards/internal/modules/study/dto"
	studyin "flashcards/internal/modules/study/port/in"
	"flashcards/internal/modules/study/service"
	apperrors "flashcards/internal/platform/errors"
)

// Interactor owns the single running session and its presentation loop.
// It is not safe for concurrent use; the TUI calls it from its update loop only.
type Interactor struct {
	svc      *service.StudyService
	log      *zap.Logger
	loop     *domain.Loop
	settings domain.Settings
}

func NewInteractor(svc *service.StudyService, log *zap.Logger, settings domain.Settings) studyin.Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	settings = settings.Normalize()
	empty := svc.NewSession(domain.Dataset{})
	loop := svc.NewLoop(empty, settings.FlipDelay)
	return &Interactor{svc: svc, log: log, loop: loop, settings: settings}
}

func (i *Interactor) ReadDataset(ctx context.Context, input dto.LoadInput) (dto.DatasetInput, error) {
	ds, err := i.svc.Load(ctx, input.Path)
	if err != nil {
		i.log.Warn("dataset load failed", zap.String("path", input.Path), zap.Error(err))
		return dto.DatasetInput{}, err
	}
	cards := make([]dto.CardInput, 0, len(ds.Cards))
	for _, c := range ds.Cards {
		cards = append(cards, dto.CardInput{Front: c.Front, Back: c.Back})
	}
	i.log.Info("dataset loaded",
		zap.String("source", ds.Source),
		zap.String("front_field", ds.FrontField),
		zap.String("back_field", ds.BackField),
		zap.Int("pairs", len(cards)),
	)
	return dto.DatasetInput{Source: ds.Source, FrontField: ds.FrontField, BackField: ds.BackField, Cards: cards}, nil
}

func (i *Interactor) Replace(_ context.Context, input dto.DatasetInput) dto.Frame {
	if prev := i.loop.Session(); prev != nil && prev.Source != "" {
		i.log.Info("session replaced",
			zap.String("session_id", prev.ID),
			zap.Int("known", prev.Known()),
			zap.Int("unknown", prev.Unknown()),
			zap.Duration("elapsed", i.svc.Elapsed(prev)),
		)
	}
	cards := make([]domain.Card, 0, len(input.Cards))
	for idx, c := range input.Cards {
		cards = append(cards, domain.Card{ID: idx, Front: c.Front, Back: c.Back})
	}
	session := i.svc.NewSession(domain.Dataset{
		Source:     input.Source,
		FrontField: input.FrontField,
		BackField:  input.BackField,
		Cards:      cards,
	})
	i.loop.Replace(session)
	i.log.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("source", session.Source),
		zap.Int("cards", len(cards)),
		zap.Stringer("state", i.loop.State()),
	)
	return i.frame()
}

func (i *Interactor) Flip(_ context.Context) dto.Frame {
	i.loop.Flip()
	return i.frame()
}

func (i *Interactor) Expire(_ context.Context, seq uint64) (dto.Frame, bool) {
	changed := i.loop.Expire(seq)
	if !changed {
		i.log.Debug("stale flip ignored", zap.Uint64("seq", seq))
	}
	return i.frame(), changed
}

func (i *Interactor) Answer(_ context.Context, input dto.AnswerInput) (dto.Frame, error) {
	answer := domain.AnswerUnknown
	if input.Known {
		answer = domain.AnswerKnown
	}
	if _, _, err := i.loop.Answer(answer); err != nil {
		if !errors.Is(err, apperrors.ErrNoCard) {
			i.log.Error("answer failed", zap.Error(err))
		}
		return i.frame(), err
	}
	s := i.loop.Session()
	if i.loop.State() == domain.StateFinished {
		i.log.Info("deck finished",
			zap.String("session_id", s.ID),
			zap.Int("known", s.Known()),
			zap.Int("unknown", s.Unknown()),
			zap.Duration("elapsed", i.svc.Elapsed(s)),
		)
	}
	return i.frame(), nil
}

func (i *Interactor) ApplySettings(_ context.Context, input dto.SettingsInput) (dto.SettingsOutput, dto.Frame, error) {
	next, err := domain.ParseSettings(i.settings, domain.SettingsText{
		FlipDelayMS: input.FlipDelayMS,
		FontSize:    input.FontSize,
		Background:  input.Background,
		CardFront:   input.CardFront,
		CardBack:    input.CardBack,
	})
	if err != nil {
		return toSettingsOutput(i.settings), i.frame(), err
	}
	i.settings = next
	i.loop.SetDelay(next.FlipDelay)
	i.log.Info("settings applied",
		zap.Duration("flip_delay", next.FlipDelay),
		zap.Int("font_size", next.FontSize),
	)
	return toSettingsOutput(next), i.frame(), nil
}

func (i *Interactor) Settings(_ context.Context) dto.SettingsOutput {
	return toSettingsOutput(i.settings)
}

func (i *Interactor) Frame(_ context.Context) dto.Frame {
	return i.frame()
}

func (i *Interactor) frame() dto.Frame {
	s := i.loop.Session()
	f := dto.Frame{
		SessionID:  s.ID,
		Source:     s.Source,
		State:      i.loop.State().String(),
		FrontField: s.FrontField,
		BackField:  s.BackField,
		Known:      s.Known(),
		Unknown:    s.Unknown(),
		Remaining:  s.Remaining(),
	}
	if card, ok := s.Current(); ok && i.loop.State() != domain.StateFinished {
		f.Front = card.Front
		f.Back = card.Back
	}
	if t, ok := i.loop.Pending(); ok {
		f.Flip = &dto.FlipRequest{Seq: t.Seq, Delay: t.Delay}
	}
	return f
}

func toSettingsOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		FlipDelay:  s.FlipDelay,
		FontSize:   s.FontSize,
		Background: s.Background,
		CardFront:  s.CardFront,
		CardBack:   s.CardBack,
	}
}
