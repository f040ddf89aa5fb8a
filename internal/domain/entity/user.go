// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns quotes. The ID is assigned by the store on
// creation and is immutable afterwards.
type User struct {
	ID           int64     // Store-assigned identifier.
	Username     string    // Login identifier, unique across accounts.
	PasswordHash string    // PHC-encoded argon2id hash. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
