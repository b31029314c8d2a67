package bank

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type memoryStore struct {
	mu sync.RWMutex
	qs map[int]Question
}

// NewInMemoryStore returns a Store backed by a process-local map, for
// standalone runs where the bank need not survive a restart.
func NewInMemoryStore() Store {
	return &memoryStore{qs: map[int]Question{}}
}

func (m *memoryStore) Replace(_ context.Context, qs []Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qs = make(map[int]Question, len(qs))
	for _, q := range qs {
		m.qs[q.ID] = q
	}
	return nil
}

func (m *memoryStore) Append(_ context.Context, qs []Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := 0
	for id := range m.qs {
		if id > next {
			next = id
		}
	}
	for _, q := range qs {
		if _, taken := m.qs[q.ID]; taken || q.ID <= 0 {
			next++
			q.ID = next
		} else if q.ID > next {
			next = q.ID
		}
		m.qs[q.ID] = q
	}
	return nil
}

func (m *memoryStore) Get(_ context.Context, id int) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.qs[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryStore) List(_ context.Context) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Question, 0, len(m.qs))
	for _, q := range m.qs {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.qs), nil
}

func (m *memoryStore) SetMedia(_ context.Context, id, slot int, name, mime string) error {
	if slot < 1 || slot > MaxMediaSlots {
		return fmt.Errorf("media slot %d out of range 1..%d", slot, MaxMediaSlots)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.qs[id]
	if !ok {
		return ErrNotFound
	}
	for i, ref := range q.Media {
		if ref.Slot == slot {
			q.Media[i] = MediaRef{Slot: slot, Name: name, MIME: mime}
			m.qs[id] = q
			return nil
		}
	}
	q.Media = append(q.Media, MediaRef{Slot: slot, Name: name, MIME: mime})
	m.qs[id] = q
	return nil
}

func (m *memoryStore) GetMedia(_ context.Context, id, slot int) (MediaRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.qs[id]
	if !ok {
		return MediaRef{}, ErrNotFound
	}
	for _, ref := range q.Media {
		if ref.Slot == slot {
			return ref, nil
		}
	}
	return MediaRef{}, ErrNotFound
}
