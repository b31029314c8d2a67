package storage

import (
	"fmt"
	"io"
)

// BlobStore holds question media bytes. The bank table records which
// slots are populated; the bytes themselves live here.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}

// MediaKey is the canonical blob key for a question's media slot.
func MediaKey(questionID, slot int) string {
	return fmt.Sprintf("questions/%d/%d", questionID, slot)
}
