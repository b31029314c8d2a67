package session

import "sync"

// Repo holds live sessions keyed by identifier. Lookup, insert and
// delete may run concurrently for different takers; mutation of an
// individual session is guarded by that session's own mutex, not by
// the repo lock.
type Repo interface {
	Put(s *Session)
	Get(id string) (*Session, error)
	Delete(id string)
}

type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryRepo returns the in-process repository used by a
// single-process deployment; sessions are memory-only by design.
func NewMemoryRepo() Repo {
	return &memoryRepo{sessions: map[string]*Session{}}
}

func (r *memoryRepo) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *memoryRepo) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *memoryRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
