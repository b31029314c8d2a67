package parser

import "testing"

func TestParseRowsBasic(t *testing.T) {
	rows := [][]string{
		{"Câu 1. What is 2+2?", ""},
		{"a. 3", ""},
		{"b. 4", "x"},
		{"c. 5", ""},
		{"d. 22", ""},
		{"Câu 2. Capital of France?", ""},
		{"a. Berlin", ""},
		{"b. Paris", "X"},
		{"c. Rome", ""},
		{"d. Madrid", ""},
	}
	qs := ParseRows(rows)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Prompt != "What is 2+2?" || qs[0].Correct != "B" {
		t.Errorf("q1 = %+v", qs[0])
	}
	if text, _ := qs[0].Option("B"); text != "4" {
		t.Errorf("q1 option B = %q", text)
	}
	if qs[1].ID != 2 || qs[1].Correct != "B" {
		t.Errorf("q2 = %+v", qs[1])
	}
}

func TestParseRowsCompletesOnlyAtFourOptions(t *testing.T) {
	rows := [][]string{
		{"Câu 1. Incomplete"},
		{"a. one"},
		{"b. two"},
		{"Câu 2. Complete"},
		{"a. one"},
		{"b. two", "x"},
		{"c. three"},
		{"d. four"},
	}
	qs := ParseRows(rows)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 (partial dropped)", len(qs))
	}
	if qs[0].Prompt != "Complete" || qs[0].Correct != "B" {
		t.Errorf("got %+v", qs[0])
	}
}

func TestParseRowsPromptContinuation(t *testing.T) {
	rows := [][]string{
		{"Câu 1. A prompt"},
		{"that continues on the next row"},
		{"a. one"},
		{"ignored stray row between options"},
		{"b. two"},
		{"c. three"},
		{"d. four", "x"},
	}
	qs := ParseRows(rows)
	if len(qs) != 1 {
		t.Fatalf("got %d questions", len(qs))
	}
	want := "A prompt\nthat continues on the next row"
	if qs[0].Prompt != want {
		t.Errorf("prompt = %q, want %q", qs[0].Prompt, want)
	}
	if len(qs[0].Options) != 4 || qs[0].Correct != "D" {
		t.Errorf("got %+v", qs[0])
	}
}

func TestParseRowsInlineCellSplit(t *testing.T) {
	rows := [][]string{
		{"Câu 1. Which color? a. red b. green c. blue d. cyan"},
	}
	qs := ParseRows(rows)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	q := qs[0]
	if len(q.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(q.Options))
	}
	if text, _ := q.Option("C"); text != "blue" {
		t.Errorf("option C = %q, want blue", text)
	}
	// Inline questions have no column-B mark to read, so correct stays
	// unset.
	if q.Correct != "" {
		t.Errorf("correct = %q, want unset", q.Correct)
	}
}

func TestParseRowsInlinePartialCompletedByLaterRows(t *testing.T) {
	rows := [][]string{
		{"Câu 1. Pick a. one b. two"},
		{"c. three", "x"},
		{"d. four"},
	}
	qs := ParseRows(rows)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if len(qs[0].Options) != 4 || qs[0].Correct != "C" {
		t.Errorf("got %+v", qs[0])
	}
}

func TestParseRowsEmptyAndShortRows(t *testing.T) {
	rows := [][]string{
		{},
		{""},
		{"Câu 1. Q"},
		{"a. 1"},
		{"b. 2", "x"},
		{"c. 3"},
		{"d. 4"},
	}
	qs := ParseRows(rows)
	if len(qs) != 1 || qs[0].Correct != "B" {
		t.Fatalf("got %+v", qs)
	}
}
