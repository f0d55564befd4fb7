// Package qrcode renders organisation invite QR codes.
package qrcode

import (
	"fmt"
	"strings"

	"roster/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size    int
	baseURL string
}

// NewQRCodeService creates a new QR code service instance. The generated
// codes encode "{baseURL}/api/organisations/{orgId}/users", the endpoint a
// member-adding client posts to.
func NewQRCodeService(size int, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:    size,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateInviteQR renders a PNG QR code with the organisation join URL.
func (s *qrcodeService) GenerateInviteQR(orgID uuid.UUID) ([]byte, error) {
	joinURL := fmt.Sprintf("%s/api/organisations/%s/users", s.baseURL, orgID)

	qrCode, err := qrcode.New(joinURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
