package service

import "github.com/google/uuid"

// QRCodeService defines the interface for organisation invite QR codes.
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code encoding the join URL for the
	// given organisation.
	GenerateInviteQR(orgID uuid.UUID) ([]byte, error)
}
