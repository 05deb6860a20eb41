package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("board-secret", time.Hour)

	token, err := m.CreateToken("second-user")
	require.NoError(t, err)

	userID, err := m.UserID(token)
	require.NoError(t, err)
	assert.Equal(t, "second-user", userID)
	assert.Equal(t, time.Hour, m.TTL())
}

func TestManager_MissingUser(t *testing.T) {
	_, err := NewManager("board-secret", time.Hour).CreateToken("  ")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewManager("other-secret", time.Hour).CreateToken("default-admin")
	require.NoError(t, err)

	_, err = NewManager("board-secret", time.Hour).UserID(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("board-secret", time.Minute).(*manager)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, err := m.CreateToken("default-user")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.UserID(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "default-admin"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("board-secret", time.Hour).UserID(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Garbage(t *testing.T) {
	_, err := NewManager("board-secret", time.Hour).UserID("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
