package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the decoded payload of a verified access token. A token is
// stateless and self-describing: identity and organisation membership are
// carried in the token itself, so no server-side session store exists.
type Claims struct {
	UserID    uuid.UUID
	OrgIDs    []uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for minting and verifying signed,
// time-limited bearer tokens.
type TokenService interface {
	// Generate creates a signed access token embedding the subject's ID and
	// organisation memberships, expiring after the configured TTL.
	Generate(userID uuid.UUID, orgIDs []uuid.UUID) (string, error)

	// Validate checks signature integrity and expiry. Every failure mode
	// (bad signature, malformed token, expired) collapses into the single
	// unauthorized error so callers cannot leak the reason to clients.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
