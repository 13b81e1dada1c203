package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	deckout "flashcards/internal/modules/deck/adapter/out"
	deckservice "flashcards/internal/modules/deck/service"
	deckusecase "flashcards/internal/modules/deck/usecase"
	studyout "flashcards/internal/modules/study/adapter/out"
	"flashcards/internal/modules/study/domain"
	"flashcards/internal/modules/study/dto"
	studyin "flashcards/internal/modules/study/port/in"
	"flashcards/internal/modules/study/service"
	"flashcards/internal/modules/study/usecase"
	apperrors "flashcards/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{}

func (fakeID) New() string { return "sess-1" }

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

type fakeLoader struct {
	ds  domain.Dataset
	err error
}

func (f fakeLoader) Load(context.Context, string) (domain.Dataset, error) { return f.ds, f.err }

var defaults = domain.Settings{FlipDelay: 3 * time.Second, FontSize: 60, Background: "#B1DDC6", CardFront: "#FFFFFF", CardBack: "#2C3E50"}

func newInteractor(loader fakeLoader) studyin.Usecase {
	svc := service.NewStudyService(fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}, fakeID{}, firstSource{}, loader)
	return usecase.NewInteractor(svc, nil, defaults)
}

func tagalog() domain.Dataset {
	return domain.Dataset{Source: "words.csv", FrontField: "Filipino", BackField: "English", Cards: []domain.Card{
		{ID: 0, Front: "aso", Back: "dog"},
		{ID: 1, Front: "pusa", Back: "cat"},
	}}
}

func TestStudyCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(fakeLoader{ds: tagalog()})

	ds, err := uc.ReadDataset(ctx, dto.LoadInput{Path: "words.csv"})
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	frame := uc.Replace(ctx, ds)
	if frame.State != "front" || frame.Title() != "Filipino" || frame.Text() != "aso" {
		t.Fatalf("unexpected front frame %#v", frame)
	}
	if frame.Flip == nil || frame.Flip.Delay != 3*time.Second {
		t.Fatalf("front frame must request a flip, got %#v", frame.Flip)
	}

	flipped, changed := uc.Expire(ctx, frame.Flip.Seq)
	if !changed || flipped.State != "back" || flipped.Title() != "English" || flipped.Text() != "dog" {
		t.Fatalf("unexpected back frame %#v changed=%t", flipped, changed)
	}
	if flipped.Flip != nil {
		t.Fatalf("back frame must not request a flip")
	}

	next, err := uc.Answer(ctx, dto.AnswerInput{Known: true})
	if err != nil {
		t.Fatalf("answer known: %v", err)
	}
	if next.Known != 1 || next.Remaining != 1 || next.Text() != "pusa" {
		t.Fatalf("unexpected frame after known %#v", next)
	}

	next, err = uc.Answer(ctx, dto.AnswerInput{Known: false})
	if err != nil {
		t.Fatalf("answer unknown: %v", err)
	}
	if next.Unknown != 1 || next.Remaining != 1 || next.State != "front" {
		t.Fatalf("unexpected frame after unknown %#v", next)
	}

	done, err := uc.Answer(ctx, dto.AnswerInput{Known: true})
	if err != nil || !done.Finished() {
		t.Fatalf("expected finished, got %#v err=%v", done, err)
	}
	if _, err := uc.Answer(ctx, dto.AnswerInput{Known: true}); !errors.Is(err, apperrors.ErrNoCard) {
		t.Fatalf("expected ErrNoCard after finish, got %v", err)
	}
	if f := uc.Frame(ctx); f.Known != 2 || f.Unknown != 1 {
		t.Fatalf("score changed after finish: %d/%d", f.Known, f.Unknown)
	}
}

func TestReplaceResetsScore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(fakeLoader{ds: tagalog()})
	ds, _ := uc.ReadDataset(ctx, dto.LoadInput{Path: "words.csv"})
	uc.Replace(ctx, ds)
	_, _ = uc.Answer(ctx, dto.AnswerInput{Known: false})

	frame := uc.Replace(ctx, ds)
	if frame.Known != 0 || frame.Unknown != 0 || frame.Remaining != 2 {
		t.Fatalf("expected a fresh session, got %#v", frame)
	}
}

func TestReadDatasetFailureLeavesSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	good := newInteractor(fakeLoader{ds: tagalog()})
	ds, _ := good.ReadDataset(ctx, dto.LoadInput{Path: "words.csv"})
	before := good.Replace(ctx, ds)

	failing := newInteractor(fakeLoader{err: apperrors.ErrFormat})
	if _, err := failing.ReadDataset(ctx, dto.LoadInput{Path: "bad.csv"}); !errors.Is(err, apperrors.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if f := failing.Frame(ctx); !f.Finished() || f.Remaining != 0 {
		t.Fatalf("failed load must leave the empty session, got %#v", f)
	}
	if after := good.Frame(ctx); after.Text() != before.Text() || after.Remaining != before.Remaining {
		t.Fatalf("session changed unexpectedly")
	}
}

func TestEmptyDatasetFinishesImmediately(t *testing.T) {
	t.Parallel()
	uc := newInteractor(fakeLoader{})
	frame := uc.Replace(context.Background(), dto.DatasetInput{Source: "missing.csv"})
	if !frame.Finished() || frame.Flip != nil {
		t.Fatalf("empty dataset must finish without a timer, got %#v", frame)
	}
}

func TestManualFlipCancelsTimer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(fakeLoader{ds: tagalog()})
	ds, _ := uc.ReadDataset(ctx, dto.LoadInput{})
	frame := uc.Replace(ctx, ds)

	flipped := uc.Flip(ctx)
	if flipped.State != "back" || flipped.Flip != nil {
		t.Fatalf("unexpected flipped frame %#v", flipped)
	}
	if _, changed := uc.Expire(ctx, frame.Flip.Seq); changed {
		t.Fatalf("cancelled timer must not change state")
	}
}

func TestApplySettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(fakeLoader{ds: tagalog()})
	ds, _ := uc.ReadDataset(ctx, dto.LoadInput{})
	first := uc.Replace(ctx, ds)

	if _, _, err := uc.ApplySettings(ctx, dto.SettingsInput{FlipDelayMS: "soon", FontSize: "20"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := uc.Settings(ctx); got.FlipDelay != 3*time.Second || got.FontSize != 60 {
		t.Fatalf("prior settings must be kept, got %#v", got)
	}

	out, frame, err := uc.ApplySettings(ctx, dto.SettingsInput{FlipDelayMS: "1500", FontSize: "32", CardBack: "#000000"})
	if err != nil {
		t.Fatalf("apply settings: %v", err)
	}
	if out.FlipDelay != 1500*time.Millisecond || out.FontSize != 32 || out.CardBack != "#000000" || out.CardFront != "#FFFFFF" {
		t.Fatalf("unexpected settings %#v", out)
	}
	if frame.Flip == nil || frame.Flip.Seq == first.Flip.Seq || frame.Flip.Delay != 1500*time.Millisecond {
		t.Fatalf("settings must restart the card with the new delay, got %#v", frame.Flip)
	}
}

func TestStudyWithRealDeckModule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte("Filipino,English\naso,dog\npusa,cat\nbahay,house\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	deck := deckusecase.NewInteractor(deckservice.NewDeckService(deckout.NewDelimitedReader(), deckout.NewSQLiteReader()))
	svc := service.NewStudyService(fakeClock{}, fakeID{}, firstSource{}, studyout.NewDeckLoaderAdapter(deck))
	uc := usecase.NewInteractor(svc, nil, defaults)

	ds, err := uc.ReadDataset(ctx, dto.LoadInput{Path: path})
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	if len(ds.Cards) != 3 || ds.FrontField != "Filipino" || ds.BackField != "English" {
		t.Fatalf("unexpected dataset %#v", ds)
	}
	frame := uc.Replace(ctx, ds)
	if frame.Remaining != 3 || frame.Text() != "aso" {
		t.Fatalf("unexpected frame %#v", frame)
	}

	if _, err := uc.ReadDataset(ctx, dto.LoadInput{Path: filepath.Join(t.TempDir(), "nope.csv")}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
