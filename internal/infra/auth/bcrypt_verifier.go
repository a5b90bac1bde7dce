// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"autosphere/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptVerifier is a concrete implementation of the CredentialVerifier interface using bcrypt.
type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier is the constructor for bcryptVerifier.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptVerifier(cost int) service.CredentialVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptVerifier{cost: cost}
}

// Seal generates a salted hash from a plaintext password using bcrypt.
func (v *bcryptVerifier) Seal(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Verify compares a plaintext password with a bcrypt hash.
func (v *bcryptVerifier) Verify(password, sealed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(sealed), []byte(password)) == nil
}
