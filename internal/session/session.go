// Package session issues and validates the bearer tokens guarding the
// dashboard API. Tokens live in memory only; restarting the service signs
// everyone out.
package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-ops/drishti/internal/domain"
)

// Session is one authenticated operator session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager holds the active sessions.
type Manager struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewManager creates an empty session Manager.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		logger:   logger,
		sessions: make(map[string]Session),
	}
}

// Login opens a session for the given credentials. Any non-empty pair is
// accepted; there is no operator directory to check against.
func (m *Manager) Login(username, password string) (Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Session{}, domain.ErrValidationFailed
	}

	s := Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	m.logger.Info("session opened", slog.String("username", username))
	return s, nil
}

// Validate returns the session for token, if one is open.
func (m *Manager) Validate(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

// Logout closes the session for token. Unknown tokens are ignored.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
