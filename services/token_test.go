package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)

	token, err := tokens.Issue(17)
	require.NoError(t, err)

	userID, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(17), userID)
}

func TestTokenIDsAreUnique(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)

	a, err := tokens.Issue(1)
	require.NoError(t, err)
	b, err := tokens.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenRejected(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)

	forged, err := NewTokenService("other", time.Minute).Issue(1)
	require.NoError(t, err)

	expired, err := NewTokenService("secret", -time.Minute).Issue(1)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "neo"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"empty":       "",
		"garbage":     "not-a-token",
		"wrong key":   forged,
		"expired":     expired,
		"alg none":    none,
		"bad subject": badSubject,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
