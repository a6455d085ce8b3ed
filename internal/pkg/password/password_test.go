//go:build unit

package password_test

import (
	"strings"
	"testing"

	"feedbackpro/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatches(t *testing.T) {
	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, password.Matches(hash, "secret123"))
	assert.False(t, password.Matches(hash, "secret124"))
	assert.False(t, password.Matches(hash, ""))
	assert.False(t, password.Matches("", "secret123"))
	assert.False(t, password.Matches("not-a-bcrypt-hash", "secret123"))
}

func TestHashRejectsUnhashable(t *testing.T) {
	for _, plain := range []string{"", strings.Repeat("x", 73)} {
		_, err := password.Hash(plain)
		assert.ErrorIs(t, err, password.ErrUnhashable)
	}
}

func TestBurnDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { password.Burn("anything") })
}
