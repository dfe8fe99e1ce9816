package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJWT(t *testing.T) {
	token, err := GenerateJWT("12", "admin", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "12", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("12", "admin", "s3cret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("12", "customer", "s3cret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_NoSecret(t *testing.T) {
	_, err := ParseJWT("whatever", "")
	assert.Error(t, err)
}
