// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing encoded hash from a plaintext
	// password. Each call uses a fresh random salt, so hashing the same
	// plaintext twice yields two different encodings.
	Hash(password string) (string, error)

	// Verify compares a plaintext password against an encoded hash. The
	// match result is false on any failure. A non-nil error reports a
	// malformed encoded hash, which callers should log as data corruption;
	// it never accompanies a successful match.
	Verify(password, encoded string) (bool, error)
}
