package auth

import (
	"crypto/subtle"

	"autosphere/internal/domain/service"
)

// plaintextVerifier stores the credential as entered. It exists for parity with
// directories written by earlier builds of the storefront and is not a security boundary.
type plaintextVerifier struct{}

// NewPlaintextVerifier is the constructor for plaintextVerifier.
func NewPlaintextVerifier() service.CredentialVerifier {
	return plaintextVerifier{}
}

func (plaintextVerifier) Seal(password string) (string, error) {
	return password, nil
}

func (plaintextVerifier) Verify(password, sealed string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(sealed)) == 1
}
