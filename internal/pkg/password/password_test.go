//go:build unit

package password_test

import (
	"testing"

	"evcontrol/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := password.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, password.ComparePassword(hash, "s3cret!"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.True(t, password.CheckCredentials("admin", hash, "admin", "s3cret!"))
	assert.False(t, password.CheckCredentials("admin", hash, "Admin", "s3cret!"))
	assert.False(t, password.CheckCredentials("admin", hash, "admin", "s3cret"))
}
