package bank

// Option is one lettered choice of a question, in bank storage order.
type Option struct {
	Letter string `json:"letter"` // "A".."F"
	Text   string `json:"text"`
}

// MediaRef describes one populated media slot of a question. The bytes
// themselves live in the blob store under questions/{id}/{slot}; the
// bank only records which slots are populated and how to serve them.
type MediaRef struct {
	Slot int    `json:"slot"` // 1..3
	Name string `json:"name"`
	MIME string `json:"mime"`
}

// MaxMediaSlots caps attachments per question.
const MaxMediaSlots = 3

// Question is one imported multiple-choice question. Correct is the
// letter of the right option, or "" when the source declared no usable
// answer; such questions are excluded from gradable banks.
type Question struct {
	ID      int        `json:"id"`
	Prompt  string     `json:"prompt"`
	Options []Option   `json:"options"`
	Correct string     `json:"correct,omitempty"`
	Media   []MediaRef `json:"media,omitempty"`
}

// Option returns the text of the given letter and whether it exists.
func (q Question) Option(letter string) (string, bool) {
	for _, o := range q.Options {
		if o.Letter == letter {
			return o.Text, true
		}
	}
	return "", false
}

// Gradable reports whether the question carries a correct letter that
// actually maps to one of its options.
func (q Question) Gradable() bool {
	if q.Correct == "" {
		return false
	}
	_, ok := q.Option(q.Correct)
	return ok
}

// GradableOnly filters a bank down to questions that can be scored.
func GradableOnly(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if q.Gradable() {
			out = append(out, q)
		}
	}
	return out
}
