package repository

import (
	"sync"
	"time"

	"gruenderai_backend/internal/model"
)

// SessionStore is the storage abstraction for assessment sessions. The
// service layer depends on this interface so the in-memory store can be
// swapped for a persistent backend without touching scoring logic.
type SessionStore interface {
	// Put stores or replaces the session under its id.
	Put(sess *model.Session)
	Get(id string) (*model.Session, bool)
	Delete(id string)
	Count() int
	// PurgeOlderThan removes sessions started before cutoff and returns
	// the removed ids.
	PurgeOlderThan(cutoff time.Time) []string
}

// MemorySessionStore keeps sessions in a process-local map. State lives
// for the process lifetime only.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*model.Session)}
}

func (s *MemorySessionStore) Put(sess *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *MemorySessionStore) Get(id string) (*model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *MemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *MemorySessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) PurgeOlderThan(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged []string
	for id, sess := range s.sessions {
		if sess.StartedAt.Before(cutoff) {
			delete(s.sessions, id)
			purged = append(purged, id)
		}
	}
	return purged
}
