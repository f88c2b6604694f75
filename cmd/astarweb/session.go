package main

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pdrpinto/gridastar/board"
)

// session is one board and at most one running search over it.
type session struct {
	id uuid.UUID

	mu      sync.Mutex
	board   *board.Board
	running bool
}

func (s *session) frame() frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := newFrame(s.id.String(), s.board)
	f.Running = s.running
	return f
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*session)}
}

func (st *sessionStore) add(b *board.Board) *session {
	s := &session{id: uuid.New(), board: b}
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *sessionStore) get(raw string) (*session, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) remove(raw string) bool {
	id, err := uuid.Parse(raw)
	if err != nil {
		return false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}
