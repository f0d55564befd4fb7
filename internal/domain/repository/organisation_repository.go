package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrganisationNotFound is returned when an organisation is not found.
var ErrOrganisationNotFound = errors.New("organisation not found")

// OrganisationRepository defines persistence operations for organisations
// and the account<->organisation membership relation.
type OrganisationRepository interface {
	// FindByID retrieves a single organisation, including its member IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organisation, error)

	// Create persists a new organisation, including any pre-connected members.
	Create(ctx context.Context, org *entity.Organisation) error

	// AddMember connects a user to an organisation. Adding an existing
	// member is a no-op, not an error.
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error

	// ListByMemberOrCreator returns every organisation the user belongs to
	// or created, without duplicates.
	ListByMemberOrCreator(ctx context.Context, userID uuid.UUID) ([]*entity.Organisation, error)

	// ListMemberOrgIDs returns the IDs of organisations the user belongs to.
	ListMemberOrgIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListCreatedOrgIDs returns the IDs of organisations the user created.
	ListCreatedOrgIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
