//go:build unit

package user_test

import (
	"strings"
	"testing"

	"cape-tours-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  Admin@CapeTours.Example  ")
		require.NoError(t, err)
		assert.Equal(t, "admin@capetours.example", email.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, v := range []string{"", "plain", "no-at.example.com", "two@@example.com", "no-domain@example"} {
			_, err := user.NewEmail(v)
			require.ErrorIs(t, err, user.ErrInvalidEmail, v)
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("accepts up to the bcrypt limit", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("x", user.MaxPasswordLength))
		require.NoError(t, err)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := user.NewPassword("")
		require.ErrorIs(t, err, user.ErrEmptyPassword)
	})

	t.Run("rejects beyond the bcrypt limit", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("x", user.MaxPasswordLength+1))
		require.ErrorIs(t, err, user.ErrPasswordTooLong)
	})
}

func TestRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		for _, v := range []string{"member", "driver", "admin"} {
			role, err := user.NewRole(v)
			require.NoError(t, err)
			assert.Equal(t, v, role.String())
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
