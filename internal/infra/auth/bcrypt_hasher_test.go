package auth

import (
	"testing"

	"visitadoras/config"
	domainerrors "visitadoras/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("visita2024")
	require.NoError(t, err)
	assert.NotEqual(t, "visita2024", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("visita2024", hash))
	assert.False(t, hasher.Check("visita2025", hash))
}

func TestBcryptHasher_MinimumLength(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, MinPasswordLength: 8}})

	_, err := hasher.Hash("corta")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	_, err = hasher.Hash("suficiente")
	assert.NoError(t, err)
}

func TestBcryptHasher_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	assert.Equal(t, defaultMinPasswordLength, hasher.minLength)
}
