package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateOrganisationInput defines the data required to create an organisation.
type CreateOrganisationInput struct {
	Name        string
	Description string
}

// OrganisationOutput is the client-facing projection of an organisation.
type OrganisationOutput struct {
	OrgID       uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// OrganisationUsecase defines the interface for organisation-related business operations.
type OrganisationUsecase interface {
	// Create makes a new organisation with the requester as its sole
	// creator. Creation does not connect the creator as a member.
	Create(ctx context.Context, creatorID uuid.UUID, input *CreateOrganisationInput) (*OrganisationOutput, error)

	// List returns every organisation the requester belongs to or created.
	List(ctx context.Context, userID uuid.UUID) ([]*OrganisationOutput, error)

	// Get returns the organisation record when the requester is a member.
	Get(ctx context.Context, requesterOrgIDs []uuid.UUID, orgID uuid.UUID) (*OrganisationOutput, error)

	// AddMember connects an account to an organisation.
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error

	// InviteQR renders the organisation's invite QR code for a member.
	InviteQR(ctx context.Context, requesterOrgIDs []uuid.UUID, orgID uuid.UUID) ([]byte, error)
}
