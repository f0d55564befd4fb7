// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Payload shape has already been validated by the delivery layer.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// UserOutput is the client-facing projection of an account.
// The password hash never appears here.
type UserOutput struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
}

// AuthOutput returns the minted access token together with the account.
type AuthOutput struct {
	AccessToken string      `json:"accessToken"`
	User        *UserOutput `json:"user"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates the account, its default organisation (with the new
	// account connected as a member), and mints an access token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and mints an access token carrying the
	// account's organisation memberships.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the target account's profile when the access
	// policy allows the requester to read it.
	GetProfile(ctx context.Context, requesterID uuid.UUID, requesterOrgIDs []uuid.UUID, targetID uuid.UUID) (*UserOutput, error)
}
