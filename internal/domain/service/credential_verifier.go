// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialVerifier seals and checks the mock account credential.
// This abstracts the storage form of the password (plaintext or a hash), keeping the domain pure.
type CredentialVerifier interface {
	// Seal converts a plaintext password into its stored form.
	Seal(password string) (string, error)

	// Verify compares a plaintext password with a stored credential to see if they match.
	Verify(password, sealed string) bool
}
