package session

import (
	"errors"
	"sync"
	"time"

	"github.com/BourneJH/exam-application/internal/bank"
)

var (
	ErrBadConfig     = errors.New("invalid session config")
	ErrNotFound      = errors.New("session not found")
	ErrClosed        = errors.New("session is closed")
	ErrUnknownAnswer = errors.New("answer letter not among the question's options")
)

type State string

const (
	StateInProgress State = "in_progress"
	StateTimedOut   State = "timed_out"
	StateFinished   State = "finished"
)

// Config is the operator's request for a new session. Count is clamped
// to the bank size; TimeLimitSec must be positive.
type Config struct {
	Count        int `json:"count"`
	TimeLimitSec int `json:"time_limit_sec"`
}

// Choice is one displayed option after per-session shuffling.
type Choice struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is the session's own snapshot of a bank question with its
// display ordering. Later mutation of the bank cannot touch it.
type Question struct {
	BankID  int             `json:"bank_id"`
	Prompt  string          `json:"prompt"`
	Choices []Choice        `json:"choices"`
	Correct string          `json:"-"` // display letter, "" when unknown
	Media   []bank.MediaRef `json:"media,omitempty"`
}

// Session is one test-taker's timed run over a sampled subset of the
// bank. All methods are safe for concurrent use; the mutex is per
// session, never shared across sessions.
type Session struct {
	ID           string
	TimeLimitSec int
	StartedAt    time.Time

	mu        sync.Mutex
	questions []Question
	answers   map[int]string // position (1..M) -> display letter
	pos       int
	state     State
	report    *Report
	now       func() time.Time
}

func newSession(id string, qs []Question, limitSec int, now func() time.Time) *Session {
	return &Session{
		ID:           id,
		TimeLimitSec: limitSec,
		StartedAt:    now(),
		questions:    qs,
		answers:      map[int]string{},
		pos:          1,
		state:        StateInProgress,
		now:          now,
	}
}

func (s *Session) Len() int { return len(s.questions) }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Question returns the snapshot at position (1..M), clamped.
func (s *Session) Question(position int) Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.clamp(position)-1]
}

// Position returns the current position.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Answer returns the recorded letter at position, "" if unanswered.
func (s *Session) Answer(position int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers[s.clamp(position)]
}

// Progress reports, per position 1..M, whether an answer is recorded.
func (s *Session) Progress() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bool, len(s.questions))
	for i := range out {
		if _, ok := s.answers[i+1]; ok {
			out[i] = true
		}
	}
	return out
}

// RemainingSec derives the remaining time from the wall clock. It never
// goes negative and needs no background timer.
func (s *Session) RemainingSec() int {
	elapsed := int(s.now().Sub(s.StartedAt) / time.Second)
	if rem := s.TimeLimitSec - elapsed; rem > 0 {
		return rem
	}
	return 0
}

// CheckExpiry lazily moves an in-progress session to TimedOut once the
// limit has elapsed. Idempotent; safe to call on every interaction.
func (s *Session) CheckExpiry() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkExpiryLocked()
	return s.state
}

func (s *Session) checkExpiryLocked() {
	if s.state == StateInProgress && s.RemainingSec() == 0 {
		s.state = StateTimedOut
	}
}

// RecordAnswer stores the chosen display letter at position. An empty
// letter clears the answer. Letters outside the question's displayed
// options are rejected with ErrUnknownAnswer.
func (s *Session) RecordAnswer(position int, letter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkExpiryLocked()
	if s.state != StateInProgress {
		return ErrClosed
	}
	position = s.clamp(position)
	if letter == "" {
		delete(s.answers, position)
		return nil
	}
	q := s.questions[position-1]
	for _, c := range q.Choices {
		if c.Letter == letter {
			s.answers[position] = letter
			return nil
		}
	}
	return ErrUnknownAnswer
}

// Navigate moves the current position to target, clamped into [1, M]
// with no wraparound.
func (s *Session) Navigate(target int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkExpiryLocked()
	if s.state != StateInProgress {
		return s.pos, ErrClosed
	}
	s.pos = s.clamp(target)
	return s.pos, nil
}

// Next and Prev are clamped single-step navigation.
func (s *Session) Next() (int, error) { return s.Navigate(s.Position() + 1) }
func (s *Session) Prev() (int, error) { return s.Navigate(s.Position() - 1) }

// Finalize closes the session and grades it. Calling it again returns
// the same report.
func (s *Session) Finalize() (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFinished {
		return s.report, nil
	}
	s.checkExpiryLocked()
	s.state = StateFinished
	s.report = grade(s.questions, s.answers)
	return s.report, nil
}

func (s *Session) clamp(position int) int {
	if position < 1 {
		return 1
	}
	if position > len(s.questions) {
		return len(s.questions)
	}
	return position
}
