package qrcode

import (
	"strconv"
	"strings"

	"autosphere/config"
	"autosphere/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode and http sections
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.HTTP.PublicBaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ListingURL returns the storefront detail URL of a car
func (s *qrcodeService) ListingURL(carID int64) string {
	return s.baseURL + "/cars/" + strconv.FormatInt(carID, 10)
}

// GenerateListingQR encodes the listing URL as a PNG QR code
func (s *qrcodeService) GenerateListingQR(carID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.ListingURL(carID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
