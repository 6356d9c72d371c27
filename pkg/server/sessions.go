package server

import (
	"sync"

	"github.com/matst80/slask-photos/pkg/catalog"
	"github.com/matst80/slask-photos/pkg/prefs"
	"github.com/matst80/slask-photos/pkg/types"
)

// SessionStore hands out one pipeline per browsing session, created on
// first use and seeded from the persisted default filters.
type SessionStore struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	prefs    prefs.Store
	sessions map[string]*catalog.Session
}

func NewSessionStore(c *catalog.Catalog, p prefs.Store) *SessionStore {
	return &SessionStore{
		catalog:  c,
		prefs:    p,
		sessions: map[string]*catalog.Session{},
	}
}

func (s *SessionStore) Get(sessionId string) *catalog.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionId]; ok {
		return session
	}
	var defaults *types.FilterState
	if s.prefs != nil {
		defaults = s.prefs.DefaultFilters()
	}
	session := catalog.NewSession(s.catalog, defaults)
	s.sessions[sessionId] = session
	return session
}

// Refresh re-runs every session pipeline, called after catalog changes
// so the derived views never serve stale counts.
func (s *SessionStore) Refresh() {
	s.mu.Lock()
	sessions := make([]*catalog.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()
	for _, session := range sessions {
		session.ApplyFilters()
	}
}
