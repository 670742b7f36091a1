// Package session ties one interactive run to its record store.
// Data lives exactly as long as the Session.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/store"
)

// Session is a single user's working set.
type Session struct {
	ID      uuid.UUID
	Started time.Time
	Store   store.Store
	Log     *zap.Logger
}

// New opens an empty store for backend and returns a fresh session.
func New(backend string, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := store.Open(backend)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	id := uuid.New()
	sess := &Session{
		ID:      id,
		Started: time.Now(),
		Store:   s,
		Log:     log.With(zap.String("session_id", id.String())),
	}
	sess.Log.Info("session started", zap.String("backend", backendName(backend)))
	return sess, nil
}

// Close discards every record held by the session.
func (s *Session) Close() error {
	s.Log.Info("session closed", zap.Duration("elapsed", time.Since(s.Started)))
	_ = s.Log.Sync()
	return s.Store.Close()
}

func backendName(b string) string {
	if b == "" {
		return store.BackendMemory
	}
	return b
}
