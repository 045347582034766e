package newsroom

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps one Session per browser.
type SessionStore struct {
	analyzer Analyzer
	opts     []SessionOption
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore constructs an empty store. Every session it creates shares
// the analyzer and options.
func NewSessionStore(analyzer Analyzer, logger *slog.Logger, opts ...SessionOption) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		analyzer: analyzer,
		opts:     append([]SessionOption{WithLogger(logger)}, opts...),
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with the given id.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// GetOrCreate returns the session for id, creating a new one under a fresh id
// when id is empty or unknown. created reports whether a session was made.
func (s *SessionStore) GetOrCreate(id string) (session *Session, created bool) {
	if id != "" {
		if existing, ok := s.Get(id); ok {
			existing.Touch()
			return existing, false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newID := uuid.NewString()
	session = NewSession(newID, s.analyzer, s.opts...)
	s.sessions[newID] = session
	s.logger.Info("session created", "session", newID)
	return session, true
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PruneIdleSince drops sessions last seen before ts and returns how many were removed.
func (s *SessionStore) PruneIdleSince(ts time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.LastSeen().Before(ts) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
