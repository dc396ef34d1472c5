package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("mypassword")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "mypassword", hash)

	t.Run("fresh salt per call", func(t *testing.T) {
		t.Parallel()
		first, err := HashPassword("samepassword")
		require.NoError(t, err)
		second, err := HashPassword("samepassword")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, CheckPassword(first, "samepassword"))
		assert.True(t, CheckPassword(second, "samepassword"))
	})
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correctpassword")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		t.Parallel()
		assert.True(t, CheckPassword(hash, "correctpassword"))
	})

	t.Run("incorrect password", func(t *testing.T) {
		t.Parallel()
		assert.False(t, CheckPassword(hash, "wrongpassword"))
	})

	t.Run("malformed hash", func(t *testing.T) {
		t.Parallel()
		assert.False(t, CheckPassword("not-a-bcrypt-hash", "correctpassword"))
		assert.False(t, CheckPassword("", "correctpassword"))
	})
}
