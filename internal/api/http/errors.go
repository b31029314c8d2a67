package http

import (
	"errors"
	"net/http"

	"github.com/BourneJH/exam-application/internal/bank"
	"github.com/BourneJH/exam-application/internal/extract"
	"github.com/BourneJH/exam-application/internal/parser"
	"github.com/BourneJH/exam-application/internal/session"
)

// writeErr maps core errors onto HTTP statuses. Nothing out of the core
// is fatal; everything renders as a client-recoverable condition.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, bank.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, parser.ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, session.ErrBadConfig),
		errors.Is(err, session.ErrUnknownAnswer),
		errors.Is(err, extract.ErrUnreadable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
