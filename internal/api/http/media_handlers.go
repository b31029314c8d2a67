package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BourneJH/exam-application/internal/bank"
	"github.com/BourneJH/exam-application/internal/storage"
)

// UploadMediaHandler attaches images to a question, filling slots 1..3
// in order. Bytes go to the blob store; the bank records name and MIME.
func UploadMediaHandler(store bank.Store, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qid, err := strconv.Atoi(chi.URLParam(r, "questionID"))
		if err != nil {
			http.Error(w, "bad question id", http.StatusBadRequest)
			return
		}
		q, err := store.Get(r.Context(), qid)
		if err != nil {
			writeErr(w, err)
			return
		}
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "bad multipart form", http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			http.Error(w, "images required", http.StatusBadRequest)
			return
		}

		used := map[int]bool{}
		for _, ref := range q.Media {
			used[ref.Slot] = true
		}
		var stored []bank.MediaRef
		for _, fh := range files {
			slot := 0
			for s := 1; s <= bank.MaxMediaSlots; s++ {
				if !used[s] {
					slot = s
					break
				}
			}
			if slot == 0 {
				break // all slots full, extra files ignored
			}
			f, err := fh.Open()
			if err != nil {
				http.Error(w, "open upload: "+err.Error(), http.StatusBadRequest)
				return
			}
			key, err := bs.Put(storage.MediaKey(qid, slot), f)
			f.Close()
			if err != nil {
				http.Error(w, "store media: "+err.Error(), http.StatusInternalServerError)
				return
			}
			mime := fh.Header.Get("Content-Type")
			if mime == "" {
				mime = "application/octet-stream"
			}
			if err := store.SetMedia(r.Context(), qid, slot, fh.Filename, mime); err != nil {
				_ = bs.Delete(key)
				writeErr(w, err)
				return
			}
			used[slot] = true
			stored = append(stored, bank.MediaRef{Slot: slot, Name: fh.Filename, MIME: mime})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"stored": stored})
	}
}

// ServeMediaHandler streams a question's media slot with its stored
// MIME type.
func ServeMediaHandler(store bank.Store, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qid, err1 := strconv.Atoi(chi.URLParam(r, "questionID"))
		slot, err2 := strconv.Atoi(chi.URLParam(r, "slot"))
		if err1 != nil || err2 != nil {
			http.Error(w, "bad media reference", http.StatusBadRequest)
			return
		}
		ref, err := store.GetMedia(r.Context(), qid, slot)
		if err != nil {
			writeErr(w, err)
			return
		}
		rc, err := bs.Get(storage.MediaKey(qid, slot))
		if err != nil {
			http.Error(w, "media not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", ref.MIME)
		_, _ = io.Copy(w, rc)
	}
}
