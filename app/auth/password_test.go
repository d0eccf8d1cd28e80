package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	require.True(t, CheckPassword("pw123", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("pw123", "not-a-bcrypt-hash"))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
