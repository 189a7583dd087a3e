package authtoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/internal/adapter/authtoken"
)

func TestJWT(t *testing.T) {
	t.Run("IssueVerifyRoundTrip", func(t *testing.T) {
		j := authtoken.NewJWT("test-secret", time.Hour)

		token, err := j.Issue("u1")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := j.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		token, err := authtoken.NewJWT("secret-a", time.Hour).Issue("u1")
		require.NoError(t, err)

		_, err = authtoken.NewJWT("secret-b", time.Hour).Verify(token)
		require.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("ExpiredRejected", func(t *testing.T) {
		j := authtoken.NewJWT("test-secret", -time.Minute)

		token, err := j.Issue("u1")
		require.NoError(t, err)

		_, err = j.Verify(token)
		require.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		j := authtoken.NewJWT("test-secret", time.Hour)
		_, err := j.Verify("not-a-token")
		require.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := authtoken.NewBcryptHasher()

	t.Run("HashCompare", func(t *testing.T) {
		hash, err := h.Hash("sifre123")
		require.NoError(t, err)
		require.NotEqual(t, "sifre123", hash)

		assert.NoError(t, h.Compare(hash, "sifre123"))
		assert.Error(t, h.Compare(hash, "yanlis"))
	})
}
