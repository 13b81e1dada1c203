package service

import (
	"context"
	"fmt"
	"time"

	"flashcards/internal/modules/study/domain"
	studyout "flashcards/internal/modules/study/port/out"
	"flashcards/internal/platform/clock"
	"flashcards/internal/platform/id"
	"flashcards/internal/platform/random"
)

type StudyService struct {
	clock  clock.Clock
	idGen  id.Generator
	src    random.Source
	loader studyout.DatasetLoader
}

func NewStudyService(clock clock.Clock, idGen id.Generator, src random.Source, loader studyout.DatasetLoader) *StudyService {
	return &StudyService{clock: clock, idGen: idGen, src: src, loader: loader}
}

func (s *StudyService) Load(ctx context.Context, path string) (domain.Dataset, error) {
	if s.loader == nil {
		return domain.Dataset{}, fmt.Errorf("dataset loader is not configured")
	}
	ds, err := s.loader.Load(ctx, path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

func (s *StudyService) NewSession(ds domain.Dataset) *domain.Session {
	return domain.NewSession(s.idGen.New(), s.clock.Now(), ds)
}

func (s *StudyService) NewLoop(session *domain.Session, delay time.Duration) *domain.Loop {
	return domain.NewLoop(session, s.src, delay)
}

// Elapsed reports how long a session has been running.
func (s *StudyService) Elapsed(session *domain.Session) time.Duration {
	d := s.clock.Now().Sub(session.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}
