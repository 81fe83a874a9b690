// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single account.
// Each user owns a private set of todos; nothing here is shared between
// accounts.
type User struct {
	ID           int64     // Store-assigned numeric identifier.
	Username     string    // Display handle, globally unique.
	Email        string    // Login identifier, globally unique.
	PasswordHash string    // bcrypt hash of the password. Plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
