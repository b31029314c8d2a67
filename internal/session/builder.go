package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/BourneJH/exam-application/internal/bank"
)

// Builder samples a bank into sessions. Rand and Now are injected so
// tests can pin sampling, shuffling and the clock.
type Builder struct {
	Rand *rand.Rand
	Now  func() time.Time
}

func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{Rand: rng, Now: time.Now}
}

var displayLetters = []string{"A", "B", "C", "D", "E", "F"}

// Build samples min(cfg.Count, len(qs)) questions without replacement,
// shuffles each question's options into a fixed display order and
// returns the session. clamped reports that the requested count
// exceeded the bank size (a warning, not an error).
func (b *Builder) Build(qs []bank.Question, cfg Config) (s *Session, clamped bool, err error) {
	if len(qs) == 0 || cfg.Count < 1 || cfg.TimeLimitSec < 1 {
		return nil, false, ErrBadConfig
	}
	n := cfg.Count
	if n > len(qs) {
		n = len(qs)
		clamped = true
	}

	// A uniform permutation prefix is a uniform sample without
	// replacement; the sample order is kept as the session order.
	perm := b.Rand.Perm(len(qs))
	picked := make([]Question, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, b.snapshot(qs[idx]))
	}

	return newSession(uuid.NewString(), picked, cfg.TimeLimitSec, b.Now), clamped, nil
}

// snapshot copies one bank question into session display form: options
// shuffled once, relettered A.. in the new order, and the correct
// letter relocated to follow its text.
func (b *Builder) snapshot(q bank.Question) Question {
	opts := make([]bank.Option, len(q.Options))
	copy(opts, q.Options)
	b.Rand.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })

	sq := Question{
		BankID:  q.ID,
		Prompt:  q.Prompt,
		Choices: make([]Choice, len(opts)),
	}
	if len(q.Media) > 0 {
		sq.Media = append([]bank.MediaRef(nil), q.Media...)
	}
	for i, o := range opts {
		letter := displayLetters[i]
		sq.Choices[i] = Choice{Letter: letter, Text: o.Text}
		if q.Correct != "" && o.Letter == q.Correct {
			sq.Correct = letter
		}
	}
	return sq
}
