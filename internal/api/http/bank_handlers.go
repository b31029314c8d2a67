package http

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/BourneJH/exam-application/internal/bank"
	"github.com/BourneJH/exam-application/internal/extract"
	"github.com/BourneJH/exam-application/internal/parser"
)

const maxUploadBytes = 32 << 20

// UploadBankHandler imports a question document. The upload is a
// multipart form: "file" carries the document (.txt, .pdf or .xlsx),
// "overwrite" (default on) replaces the whole bank instead of
// appending. The response reports how many questions were imported and
// how many malformed blocks were skipped.
func UploadBankHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "read upload: "+err.Error(), http.StatusBadRequest)
			return
		}

		var (
			qs      []bank.Question
			skipped int
		)
		switch strings.ToLower(filepath.Ext(hdr.Filename)) {
		case ".xlsx", ".xls":
			rows, err := extract.XLSXRows(data)
			if err != nil {
				writeErr(w, err)
				return
			}
			qs = parser.ParseRows(rows)
		case ".pdf":
			text, err := extract.PDFTextFromBytes(r.Context(), data)
			if err != nil {
				writeErr(w, err)
				return
			}
			qs, skipped = parser.Parse(text)
		default:
			text, err := extract.PlainText(data)
			if err != nil {
				writeErr(w, err)
				return
			}
			qs, skipped = parser.Parse(text)
		}
		if len(qs) == 0 {
			writeErr(w, parser.ErrNoQuestions)
			return
		}

		overwrite := r.FormValue("overwrite") != "false"
		if overwrite {
			err = store.Replace(r.Context(), qs)
		} else {
			err = store.Append(r.Context(), qs)
		}
		if err != nil {
			writeErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{
			"imported": len(qs),
			"skipped":  skipped,
		})
	}
}

// ListQuestionsHandler is the operator's bank preview, answers
// included. Session views never go through here.
func ListQuestionsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		gradable := len(bank.GradableOnly(qs))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total":     len(qs),
			"gradable":  gradable,
			"questions": qs,
		})
	}
}
