package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, VerifyPassword(hash, "s3cret"))
	require.False(t, VerifyPassword(hash, "wrong"))
	require.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestHashPasswordClampsCost(t *testing.T) {
	// Out-of-range costs must not error, they fall back to the default.
	hash, err := HashPassword("s3cret", 99)
	require.NoError(t, err)
	require.True(t, VerifyPassword(hash, "s3cret"))

	hash, err = HashPassword("s3cret", -1)
	require.NoError(t, err)
	require.True(t, VerifyPassword(hash, "s3cret"))
}
