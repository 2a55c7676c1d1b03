package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m, err := NewManager("secret", "hotels", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer, err := NewManager("secret", "hotels", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("other", "hotels", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	m, err := NewManager("secret", "hotels", time.Minute)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Issue(1)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	m, err := NewManager("secret", "", time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsNonPositiveUserID(t *testing.T) {
	m, err := NewManager("secret", "hotels", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(0)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", "hotels", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
