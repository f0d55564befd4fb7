package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanViewUser(t *testing.T) {
	requester := uuid.New()
	target := uuid.New()
	sharedOrg := uuid.New()
	createdOrg := uuid.New()
	otherOrg := uuid.New()

	tests := []struct {
		name                   string
		requesterID            uuid.UUID
		targetID               uuid.UUID
		requesterOrgIDs        []uuid.UUID
		targetOrgIDs           []uuid.UUID
		requesterCreatedOrgIDs []uuid.UUID
		want                   bool
	}{
		{
			name:        "self access always allowed",
			requesterID: requester,
			targetID:    requester,
			want:        true,
		},
		{
			name:        "self access allowed even with no memberships",
			requesterID: requester,
			targetID:    requester,
			want:        true,
		},
		{
			name:                   "target belongs to org created by requester",
			requesterID:            requester,
			targetID:               target,
			targetOrgIDs:           []uuid.UUID{createdOrg},
			requesterCreatedOrgIDs: []uuid.UUID{createdOrg},
			want:                   true,
		},
		{
			name:            "shared organisation membership",
			requesterID:     requester,
			targetID:        target,
			requesterOrgIDs: []uuid.UUID{sharedOrg, otherOrg},
			targetOrgIDs:    []uuid.UUID{sharedOrg},
			want:            true,
		},
		{
			name:            "no relation at all",
			requesterID:     requester,
			targetID:        target,
			requesterOrgIDs: []uuid.UUID{otherOrg},
			targetOrgIDs:    []uuid.UUID{sharedOrg},
			want:            false,
		},
		{
			name:                   "requester created an org the target never joined",
			requesterID:            requester,
			targetID:               target,
			targetOrgIDs:           []uuid.UUID{otherOrg},
			requesterCreatedOrgIDs: []uuid.UUID{createdOrg},
			want:                   false,
		},
		{
			name:        "both users without memberships",
			requesterID: requester,
			targetID:    target,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanViewUser(tt.requesterID, tt.targetID, tt.requesterOrgIDs, tt.targetOrgIDs, tt.requesterCreatedOrgIDs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanViewOrganisation(t *testing.T) {
	org := uuid.New()
	otherOrg := uuid.New()

	assert.True(t, CanViewOrganisation(org, []uuid.UUID{otherOrg, org}))
	assert.False(t, CanViewOrganisation(org, []uuid.UUID{otherOrg}))
	assert.False(t, CanViewOrganisation(org, nil))
}

// Creating an organisation does not connect the creator as a member, so
// creatorship alone must not unlock the organisation record.
func TestCanViewOrganisation_CreatorWithoutMembership(t *testing.T) {
	org := uuid.New()

	assert.False(t, CanViewOrganisation(org, []uuid.UUID{}))
}
