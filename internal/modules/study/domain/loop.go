package domain

import (
	"time"

	apperrors "flashcards/internal/platform/errors"
	"flashcards/internal/platform/random"
)

type State int

const (
	StateFront State = iota
	StateBack
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateFront:
		return "front"
	case StateBack:
		return "back"
	default:
		return "finished"
	}
}

type Answer int

const (
	AnswerKnown Answer = iota
	AnswerUnknown
)

// FlipTimer is a request to deliver Expire(Seq) after Delay. Only the most
// recently armed sequence is honoured; every other expiry is stale.
type FlipTimer struct {
	Seq   uint64
	Delay time.Duration
}

// Loop drives the card cycle: Front, then Back on timer expiry, then a new
// Front (or Finished) on an answer. At most one flip timer is pending and it
// is cancelled before any new one is armed or any manual transition.
type Loop struct {
	session *Session
	src     random.Source
	delay   time.Duration
	state   State
	seq     uint64
	pending uint64
}

func NewLoop(session *Session, src random.Source, delay time.Duration) *Loop {
	return &Loop{session: session, src: src, delay: delay, state: StateFinished}
}

// Start enters Front with a freshly picked card.
func (l *Loop) Start() (FlipTimer, bool) {
	return l.enterFront()
}

// Replace swaps in a new session and restarts the cycle.
func (l *Loop) Replace(session *Session) (FlipTimer, bool) {
	l.cancel()
	l.session = session
	return l.enterFront()
}

// SetDelay changes the flip delay and restarts the cycle with a new card
// unless the deck is already finished.
func (l *Loop) SetDelay(delay time.Duration) (FlipTimer, bool) {
	l.delay = delay
	if l.state == StateFinished {
		return FlipTimer{}, false
	}
	return l.enterFront()
}

// Expire handles a fired flip timer. It reports whether the state changed;
// expiries for cancelled timers are ignored.
func (l *Loop) Expire(seq uint64) bool {
	if l.pending == 0 || seq != l.pending || l.state != StateFront {
		return false
	}
	l.pending = 0
	l.state = StateBack
	return true
}

// Flip shows the back side immediately.
func (l *Loop) Flip() bool {
	if l.state != StateFront {
		return false
	}
	l.cancel()
	l.state = StateBack
	return true
}

// Answer scores the current card and advances. In Finished there is no card
// and ErrNoCard is returned without touching the score.
func (l *Loop) Answer(a Answer) (FlipTimer, bool, error) {
	if l.state == StateFinished {
		return FlipTimer{}, false, apperrors.ErrNoCard
	}
	l.cancel()
	var err error
	switch a {
	case AnswerKnown:
		err = l.session.MarkKnown()
	default:
		err = l.session.MarkUnknown()
	}
	if err != nil {
		return FlipTimer{}, false, err
	}
	t, armed := l.enterFront()
	return t, armed, nil
}

// Pending returns the armed flip timer, if any.
func (l *Loop) Pending() (FlipTimer, bool) {
	if l.pending == 0 {
		return FlipTimer{}, false
	}
	return FlipTimer{Seq: l.pending, Delay: l.delay}, true
}

func (l *Loop) State() State { return l.state }
func (l *Loop) Session() *Session { return l.session }
func (l *Loop) Delay() time.Duration { return l.delay }

func (l *Loop) enterFront() (FlipTimer, bool) {
	l.cancel()
	if l.session == nil {
		l.state = StateFinished
		return FlipTimer{}, false
	}
	if _, ok := l.session.PickNext(l.src); !ok {
		l.state = StateFinished
		return FlipTimer{}, false
	}
	l.state = StateFront
	l.seq++
	l.pending = l.seq
	return FlipTimer{Seq: l.pending, Delay: l.delay}, true
}

func (l *Loop) cancel() {
	l.pending = 0
}
