package auth

import (
	"unicode/utf8"

	"visitadoras/config"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 6

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: defaultMinPasswordLength}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			hasher.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			hasher.minLength = cfg.Auth.MinPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Passwords shorter than the configured minimum are rejected.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < h.minLength {
		return "", domainerrors.ErrPasswordStrength
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
