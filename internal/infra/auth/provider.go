package auth

import (
	"autosphere/config"
	"autosphere/internal/domain/service"

	"github.com/pkg/errors"
)

// NewCredentialVerifier returns the verifier named by auth.credentialScheme.
func NewCredentialVerifier(cfg *config.Config) (service.CredentialVerifier, error) {
	switch cfg.Auth.CredentialScheme {
	case config.CredentialSchemePlaintext:
		return NewPlaintextVerifier(), nil
	case config.CredentialSchemeBcrypt:
		return NewBcryptVerifier(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unknown credential scheme: %q", cfg.Auth.CredentialScheme)
	}
}
