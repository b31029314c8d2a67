package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BourneJH/exam-application/internal/bank"
	"github.com/BourneJH/exam-application/internal/session"
)

type startSessionRequest struct {
	Count        int `json:"count"`
	TimeLimitSec int `json:"time_limit_sec"`
	TimeLimitMin int `json:"time_limit_min"` // convenience; converted to seconds
}

// StartSessionHandler samples the gradable bank into a new session.
// countMax bounds form input before the builder's bank-size clamp.
func StartSessionHandler(store bank.Store, repo session.Repo, builder *session.Builder, countMax int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		limit := req.TimeLimitSec
		if limit == 0 && req.TimeLimitMin > 0 {
			limit = req.TimeLimitMin * 60
		}
		count := req.Count
		if countMax > 0 && count > countMax {
			count = countMax
		}

		qs, err := store.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		s, clamped, err := builder.Build(bank.GradableOnly(qs), session.Config{
			Count:        count,
			TimeLimitSec: limit,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		repo.Put(s)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":     s.ID,
			"total":          s.Len(),
			"clamped":        clamped,
			"time_limit_sec": s.TimeLimitSec,
			"remaining_sec":  s.RemainingSec(),
		})
	}
}

type choiceView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type questionView struct {
	Position     int             `json:"position"`
	Total        int             `json:"total"`
	Prompt       string          `json:"prompt"`
	Choices      []choiceView    `json:"choices"`
	Media        []bank.MediaRef `json:"media,omitempty"`
	QuestionID   int             `json:"question_id"` // for media URLs
	Chosen       string          `json:"chosen,omitempty"`
	RemainingSec int             `json:"remaining_sec"`
	Progress     []bool          `json:"progress"`
	State        session.State   `json:"state"`
}

// GetQuestionHandler renders one session question for the taker:
// display-lettered choices without the correct marker, the recorded
// answer if any, remaining time and the progress grid.
func GetQuestionHandler(repo session.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := repo.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		pos, err := strconv.Atoi(chi.URLParam(r, "position"))
		if err != nil {
			http.Error(w, "bad position", http.StatusBadRequest)
			return
		}
		state := s.CheckExpiry()
		q := s.Question(pos)
		view := questionView{
			Position:     pos,
			Total:        s.Len(),
			Prompt:       q.Prompt,
			Media:        q.Media,
			QuestionID:   q.BankID,
			Chosen:       s.Answer(pos),
			RemainingSec: s.RemainingSec(),
			Progress:     s.Progress(),
			State:        state,
		}
		for _, c := range q.Choices {
			view.Choices = append(view.Choices, choiceView{Letter: c.Letter, Text: c.Text})
		}
		_ = json.NewEncoder(w).Encode(view)
	}
}

// AnswerHandler records (or clears, with an empty letter) the taker's
// choice. The acknowledgment carries the stored position and clock.
func AnswerHandler(repo session.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := repo.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		var req struct {
			Position int    `json:"position"`
			Letter   string `json:"letter"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := s.RecordAnswer(req.Position, req.Letter); err != nil {
			writeErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"position":      req.Position,
			"chosen":        req.Letter,
			"remaining_sec": s.RemainingSec(),
		})
	}
}

// NavigateHandler moves the current position: next, prev or an explicit
// goto target, all clamped without wraparound.
func NavigateHandler(repo session.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := repo.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		var req struct {
			Action string `json:"action"` // next|prev|goto
			Target int    `json:"target"` // for goto
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var pos int
		switch req.Action {
		case "next":
			pos, err = s.Next()
		case "prev":
			pos, err = s.Prev()
		case "goto":
			pos, err = s.Navigate(req.Target)
		default:
			http.Error(w, "action must be next, prev or goto", http.StatusBadRequest)
			return
		}
		if err != nil {
			writeErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"position": pos})
	}
}

// FinishSessionHandler finalizes and grades. Idempotent: a finished
// session returns the same report again.
func FinishSessionHandler(repo session.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := repo.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		rep, err := s.Finalize()
		if err != nil {
			writeErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(rep)
	}
}

// DeleteSessionHandler discards a session once the taker is done with
// the result.
func DeleteSessionHandler(repo session.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo.Delete(chi.URLParam(r, "sessionID"))
		w.WriteHeader(http.StatusNoContent)
	}
}
