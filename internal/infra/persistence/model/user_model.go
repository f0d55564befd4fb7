// Package model contains the GORM persistence models mirroring the
// database schema. Domain entities stay free of storage concerns; the
// repositories map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique index on email is the
// authoritative guard against duplicate registration.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Organisations []*OrganisationModel `gorm:"many2many:organisation_members;joinForeignKey:UserID;joinReferences:OrganisationID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
