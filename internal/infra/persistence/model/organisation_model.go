package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganisationModel mirrors the 'organisations' table. Membership lives in
// the 'organisation_members' join table; creatorship is a plain foreign key
// and deliberately does not imply a join row.
type OrganisationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Members []*UserModel `gorm:"many2many:organisation_members;joinForeignKey:OrganisationID;joinReferences:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrganisationModel) TableName() string {
	return "organisations"
}
