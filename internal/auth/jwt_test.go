package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apostle/librarium/internal/auth"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := auth.GenerateToken("reader@example.com", "USER", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "reader@example.com", claims.Subject)
	assert.Equal(t, "USER", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("reader@example.com", "USER", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := auth.GenerateToken("reader@example.com", "USER", secret, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, secret)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("not.a.token", []byte("test-secret"))
	assert.Error(t, err)
}
