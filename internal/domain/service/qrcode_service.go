package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateListingQR generates a PNG QR code that links to a car listing
	GenerateListingQR(carID int64) ([]byte, error)

	// ListingURL returns the public URL encoded in a listing QR code
	ListingURL(carID int64) string
}
