package bank

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("question not found")

// Store is the question-bank repository. A bank is produced once per
// imported document; Replace swaps the whole bank atomically, Append
// adds to it. Implementations must be safe for concurrent use.
type Store interface {
	Replace(ctx context.Context, qs []Question) error
	Append(ctx context.Context, qs []Question) error
	Get(ctx context.Context, id int) (Question, error)
	List(ctx context.Context) ([]Question, error)
	Count(ctx context.Context) (int, error)

	// SetMedia records that a media slot of a question is populated.
	// Slot must be 1..MaxMediaSlots.
	SetMedia(ctx context.Context, id, slot int, name, mime string) error
	GetMedia(ctx context.Context, id, slot int) (MediaRef, error)
}
