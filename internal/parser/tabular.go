package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/BourneJH/exam-application/internal/bank"
)

// Tabular source: column 1 mixes question-start rows ("Câu N ..." or
// "Question N ...") with option rows ("a." .. "d."); column 2 holds an
// "x" on the row of the correct option. A question is emitted once it
// has accumulated exactly four options.

var (
	reRowOption   = regexp.MustCompile(`(?i)^([a-d])\.\s*(.+)$`)
	reRowQPrefix  = regexp.MustCompile(`(?i)^(?:question|câu)\s*\d*\.*:?\s*`)
	reInlineStart = regexp.MustCompile(`(?i)\ba\.`)
	reInlineLabel = regexp.MustCompile(`(?i)\b([a-d])\.`)
)

type tabularState struct {
	prompt  string
	active  bool
	options []bank.Option
	correct string
}

// ParseRows converts a two-column dataset into questions. Rows shorter
// than two cells are treated as having an empty marker column.
func ParseRows(rows [][]string) []bank.Question {
	var (
		questions []bank.Question
		st        tabularState
	)

	emit := func() {
		q := bank.Question{
			ID:      len(questions) + 1,
			Prompt:  st.prompt,
			Options: st.options,
			Correct: st.correct,
		}
		if q.Prompt == "" {
			q.Prompt = "Question " + strconv.Itoa(q.ID)
		}
		questions = append(questions, q)
		st = tabularState{}
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		text := strings.TrimSpace(row[0])
		if text == "" {
			continue
		}
		mark := ""
		if len(row) > 1 {
			mark = strings.ToLower(strings.TrimSpace(row[1]))
		}

		switch {
		case isQuestionRow(text):
			// Finalize the previous question if it is complete.
			if st.active && len(st.options) == 4 {
				emit()
			} else {
				st = tabularState{}
			}
			prompt := strings.TrimSpace(reRowQPrefix.ReplaceAllString(text, ""))
			if m := reInlineStart.FindStringIndex(text); m != nil {
				// The cell inlines "prompt a. ... d. ...": split the
				// prompt off and extract the lettered options from the
				// remainder.
				st.active = true
				st.prompt = strings.TrimSpace(text[:m[0]])
				st.options = inlineOptions(text[m[0]:])
				if len(st.options) == 4 {
					emit() // correct stays unset, per the source format
				}
			} else {
				st.active = true
				st.prompt = prompt
			}

		case reRowOption.MatchString(text):
			m := reRowOption.FindStringSubmatch(text)
			letter := strings.ToUpper(m[1])
			if optionIndex(st.options, letter) < 0 {
				st.options = append(st.options, bank.Option{Letter: letter, Text: strings.TrimSpace(m[2])})
			}
			if mark == "x" {
				st.correct = letter
			}
			if st.active && len(st.options) == 4 {
				emit()
			}

		default:
			// A stray row continues the prompt only while no options
			// have been accumulated yet; otherwise it is ignored.
			if st.active && len(st.options) == 0 {
				st.prompt += "\n" + text
			}
		}
	}

	if st.active && len(st.options) == 4 {
		emit()
	}
	return questions
}

func isQuestionRow(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "câu") || strings.HasPrefix(lower, "question")
}

// inlineOptions extracts "a. text b. text ..." pairs from a single
// cell, each option running up to the next letter marker or the end.
func inlineOptions(rest string) []bank.Option {
	idx := reInlineLabel.FindAllStringSubmatchIndex(rest, -1)
	var opts []bank.Option
	for i, m := range idx {
		letter := strings.ToUpper(rest[m[2]:m[3]])
		end := len(rest)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		text := strings.TrimSpace(strings.ReplaceAll(rest[m[1]:end], "\n", " "))
		if optionIndex(opts, letter) < 0 {
			opts = append(opts, bank.Option{Letter: letter, Text: text})
		}
	}
	return opts
}
