package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid fields", func(t *testing.T) {
		user, err := NewUser("alice", "alice@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.IsAdmin)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secret1", user.PasswordHash)
	})

	t.Run("lowercases and trims email", func(t *testing.T) {
		user, err := NewUser("bob", "  Bob@Example.COM ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("  ", "a@example.com", "secret1")
		assert.Error(t, err)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewUser("alice", "", "secret1")
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser("alice", "not-an-email", "secret1")
		assert.Error(t, err)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := NewUser("alice", "a@example.com", "")
		assert.Error(t, err)
	})

	t.Run("emits registered event", func(t *testing.T) {
		user, err := NewUser("alice", "alice@example.com", "secret1")

		require.NoError(t, err)
		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})
}

func TestNewAdminUser(t *testing.T) {
	user, err := NewAdminUser("admin", "admin@example.com", "secret1")

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret1"))
	assert.False(t, user.VerifyPassword("wrong"))
	assert.False(t, user.VerifyPassword(""))
}

func TestChangePassword(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("another2"))
	assert.True(t, user.VerifyPassword("another2"))
	assert.False(t, user.VerifyPassword("secret1"))

	assert.Error(t, user.ChangePassword(""))
}
