// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The password is stored only as a bcrypt hash; the plaintext never leaves
// the registration/login request.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	FirstName    string
	LastName     string
	Email        string // Unique login identifier, enforced by the store.
	PasswordHash string
	Phone        string // Optional, "+" followed by 6-15 digits when present.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
