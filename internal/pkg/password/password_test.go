//go:build unit

package password_test

import (
	"testing"

	"hotel-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, password.ComparePassword(hash, "secret1"))
	assert.ErrorIs(t, password.ComparePassword(hash, "secret2"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "secret1"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
}

func TestHashRejectsEmpty(t *testing.T) {
	_, err := password.HashPasswordWithCost("", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestExistingHashesUseDefaultCost(t *testing.T) {
	hash, err := password.HashPasswordWithCost("secret1", password.DefaultCost)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}
