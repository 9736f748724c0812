package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m, err := NewManager("secret", 0)
	require.NoError(t, err)

	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	raw, expiresAt, err := m.Issue(7, "admin1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "admin1", claims.Username)
}

func TestManager_ParseExpired(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	raw, _, err := m.Issue(1, "admin1")
	require.NoError(t, err)

	m.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_ParseWrongSecret(t *testing.T) {
	issuer, err := NewManager("secret-a", 0)
	require.NoError(t, err)
	verifier, err := NewManager("secret-b", 0)
	require.NoError(t, err)

	raw, _, err := issuer.Issue(1, "admin1")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ParseGarbage(t *testing.T) {
	m, err := NewManager("secret", 0)
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
