package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organisation is a named group of member accounts with exactly one creator.
// Creatorship and membership are distinct relations: the creator is not a
// member unless explicitly connected.
type Organisation struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatorID   uuid.UUID   // The account that created this organisation.
	MemberIDs   []uuid.UUID // Accounts connected through the membership relation.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether the given account is connected to the
// organisation through the membership relation.
func (o *Organisation) HasMember(userID uuid.UUID) bool {
	for _, id := range o.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}
