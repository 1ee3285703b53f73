package registry

import (
	"context"
	"sync"

	"uploadd/internal/uploadd/session"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

// Registry holds the live sessions so consume, cancel and status requests
// arriving on their own connections can find them. Sessions remove
// themselves through their close hook; a lookup after close-out fails
// with ErrSessionNotFound.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	logger   *logger.Logger
}

func New() *Registry {
	r := &Registry{
		sessions: make(map[string]*session.Session),
		logger:   logger.WithField("component", "session-registry"),
	}

	r.logger.Debug("session registry initialized")
	return r
}

// Add registers a live session under its id.
func (r *Registry) Add(s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID()]; exists {
		r.logger.Warn("session already registered, keeping existing entry", "sessionId", s.ID())
		return
	}

	r.sessions[s.ID()] = s
	r.logger.Debug("session registered", "sessionId", s.ID(), "totalSessions", len(r.sessions))
}

// Get returns the live session for an id.
func (r *Registry) Get(id string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sessions[id]
	if !exists {
		r.logger.Debug("session not found", "sessionId", id)
		return nil, errs.ErrSessionNotFound
	}

	return s, nil
}

// Remove drops a session from the registry. Unknown ids are ignored so
// close hooks can call it unconditionally.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return
	}

	delete(r.sessions, id)
	r.logger.Debug("session removed", "sessionId", id, "totalSessions", len(r.sessions))
}

// List returns all currently live sessions.
func (r *Registry) List() []*session.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*session.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}

	return sessions
}

// CancelAll cancels every live session, used on daemon shutdown. It waits
// for each session to finish tearing down before returning.
func (r *Registry) CancelAll(ctx context.Context) {
	sessions := r.List()
	if len(sessions) == 0 {
		return
	}

	r.logger.Info("cancelling all live sessions", "count", len(sessions))

	for _, s := range sessions {
		if err := s.Cancel(ctx); err != nil {
			r.logger.Warn("failed to cancel session during shutdown", "sessionId", s.ID(), "error", err)
			continue
		}

		select {
		case <-s.Closed():
		case <-ctx.Done():
			r.logger.Warn("shutdown deadline reached before session closed", "sessionId", s.ID())
			return
		}
	}
}
