package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("user-123", "super-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(tok, "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u1", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(tok, "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u2", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(tok, "wrong-secret")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseJWT("not.a.jwt", "k")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParseJWT_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{UserID: "u3", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseJWT(tok, "k")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
