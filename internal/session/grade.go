package session

import "math"

// ItemResult is the per-question line of a grade report.
type ItemResult struct {
	Position int    `json:"position"`
	Chosen   string `json:"chosen,omitempty"`
	Correct  string `json:"correct,omitempty"`
	Right    bool   `json:"right"`
}

// Report is derived at finalize time and never stored elsewhere.
type Report struct {
	Items        []ItemResult `json:"items"`
	CorrectCount int          `json:"correct_count"`
	Total        int          `json:"total"`
	Percent      float64      `json:"percent"`
	Scale10      float64      `json:"scale10"`
}

// grade compares recorded answers against display-correct letters. A
// missing answer or an unknown correct letter never matches. No partial
// credit, no negative marking.
func grade(questions []Question, answers map[int]string) *Report {
	rep := &Report{Total: len(questions)}
	for i, q := range questions {
		pos := i + 1
		chosen := answers[pos]
		right := chosen != "" && q.Correct != "" && chosen == q.Correct
		if right {
			rep.CorrectCount++
		}
		rep.Items = append(rep.Items, ItemResult{
			Position: pos,
			Chosen:   chosen,
			Correct:  q.Correct,
			Right:    right,
		})
	}
	if rep.Total > 0 {
		rep.Percent = round2(100 * float64(rep.CorrectCount) / float64(rep.Total))
		rep.Scale10 = round2(10 * float64(rep.CorrectCount) / float64(rep.Total))
	}
	return rep
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
