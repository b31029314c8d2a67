package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/BourneJH/exam-application/internal/bank"
)

// ErrNoQuestions is reported by callers when a parse yields an empty
// bank; Parse itself returns an empty slice, not an error.
var ErrNoQuestions = errors.New("no questions found in source")

var (
	// "12." / "12)" question starts, and localized "Question 12" /
	// "Câu 12" forms which also allow a colon.
	reQuestionNum  = regexp.MustCompile(`^(\d+)\s*[.)]\s*(.*)$`)
	reQuestionWord = regexp.MustCompile(`(?i)^(?:question|câu)\s*(\d+)\s*[.):]?\s*(.*)$`)

	reOption = regexp.MustCompile(`(?i)^([a-f])\s*[.):]\s*(.+)$`)
	reAnswer = regexp.MustCompile(`(?i)^(?:answer|đáp\s*án)\s*:\s*([a-f])\b`)
)

type scanState int

const (
	stateSeekStart scanState = iota
	statePrompt
	stateOptions
)

// block accumulates one question while scanning.
type block struct {
	number      int
	promptLines []string
	options     []bank.Option
	correct     string
	answerSeen  bool
}

// Parse converts raw extracted text into questions, in source order.
// The second return value counts malformed blocks that were dropped
// (blocks that never produced an option line).
func Parse(raw string) ([]bank.Question, int) {
	var (
		questions []bank.Question
		skipped   int
		cur       *block
		state     = stateSeekStart
		seen      = map[int]bool{}
		maxSeen   int
	)

	finalize := func() {
		if cur == nil {
			return
		}
		b := *cur
		cur = nil
		if len(b.options) == 0 {
			skipped++
			return
		}
		num := b.number
		if num <= 0 || seen[num] {
			num = maxSeen + 1
		}
		seen[num] = true
		if num > maxSeen {
			maxSeen = num
		}
		prompt := strings.Join(b.promptLines, " ")
		if prompt == "" {
			prompt = "Question " + strconv.Itoa(num)
		}
		correct := b.correct
		if correct != "" {
			if _, ok := (bank.Question{Options: b.options}).Option(correct); !ok {
				correct = ""
			}
		}
		questions = append(questions, bank.Question{
			ID:      num,
			Prompt:  prompt,
			Options: b.options,
			Correct: correct,
		})
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if num, rest, ok := matchQuestionStart(line); ok {
			finalize()
			cur = &block{number: num}
			state = statePrompt
			if rest != "" {
				cur.promptLines = append(cur.promptLines, rest)
			}
			continue
		}
		if cur == nil {
			continue // stray text before the first question
		}

		if m := reAnswer.FindStringSubmatch(line); m != nil {
			cur.correct = strings.ToUpper(m[1])
			cur.answerSeen = true
			continue
		}
		if m := reOption.FindStringSubmatch(line); m != nil {
			letter := strings.ToUpper(m[1])
			text := strings.TrimSpace(m[2])
			if i := optionIndex(cur.options, letter); i >= 0 {
				cur.options[i].Text = text
			} else {
				cur.options = append(cur.options, bank.Option{Letter: letter, Text: text})
			}
			cur.answerSeen = false
			state = stateOptions
			continue
		}

		switch state {
		case statePrompt:
			cur.promptLines = append(cur.promptLines, line)
		case stateOptions:
			// Option text continues until the next option, answer or
			// question marker.
			if !cur.answerSeen && len(cur.options) > 0 {
				last := &cur.options[len(cur.options)-1]
				last.Text += " " + line
			}
		}
	}
	finalize()

	return questions, skipped
}

func matchQuestionStart(line string) (num int, rest string, ok bool) {
	m := reQuestionWord.FindStringSubmatch(line)
	if m == nil {
		m = reQuestionNum.FindStringSubmatch(line)
	}
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}

func optionIndex(opts []bank.Option, letter string) int {
	for i, o := range opts {
		if o.Letter == letter {
			return i
		}
	}
	return -1
}
