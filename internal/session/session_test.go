package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/domain"
)

func newManager() *Manager {
	return NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_AcceptsAnyNonEmptyCredentials(t *testing.T) {
	m := newManager()

	s, err := m.Login("operator", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "operator", s.Username)

	got, ok := m.Validate(s.Token)
	require.True(t, ok)
	assert.Equal(t, s.Token, got.Token)
}

func TestLogin_RejectsEmptyCredentials(t *testing.T) {
	m := newManager()

	_, err := m.Login("", "pass")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = m.Login("   ", "pass")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = m.Login("operator", "")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	m := newManager()

	s, err := m.Login("operator", "pass")
	require.NoError(t, err)

	m.Logout(s.Token)
	_, ok := m.Validate(s.Token)
	assert.False(t, ok)

	// Unknown token logout is a no-op.
	m.Logout("missing")
}

func TestValidate_UnknownToken(t *testing.T) {
	m := newManager()
	_, ok := m.Validate("nope")
	assert.False(t, ok)
}
