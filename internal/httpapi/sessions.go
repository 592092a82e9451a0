package httpapi

import (
	"sync"

	"github.com/google/uuid"

	"binconv/internal/shell"
)

type sessionStore struct {
	max int

	mu       sync.RWMutex
	sessions map[string]*shell.Session
}

func newSessionStore(limit int) *sessionStore {
	return &sessionStore{
		max:      limit,
		sessions: make(map[string]*shell.Session),
	}
}

// add registers s under a fresh ID. It reports false when the store is full.
func (st *sessionStore) add(s *shell.Session) (string, bool) {
	id := uuid.NewString()
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.max {
		return "", false
	}
	st.sessions[id] = s
	return id, true
}

func (st *sessionStore) get(id string) (*shell.Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}

func (st *sessionStore) remove(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *sessionStore) closeAll() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		s.Close()
		delete(st.sessions, id)
	}
}
