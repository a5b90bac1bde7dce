package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// CreateListingInput defines a new listing. DealerID is only honored for superadmins;
// dealers always list under their own email.
type CreateListingInput struct {
	Draft    entity.CarDraft
	DealerID string
}

// ListingUsecase covers the dealer and superadmin listing pages.
type ListingUsecase interface {
	MyListings(ctx context.Context) ([]entity.Car, error)
	CreateListing(ctx context.Context, input CreateListingInput) (*entity.Car, error)
	UpdateListing(ctx context.Context, id int64, draft entity.CarDraft) (*entity.Car, error)
	DeleteListing(ctx context.Context, id int64) error
	// ListingQRCode returns a PNG QR code linking to the public listing page.
	ListingQRCode(ctx context.Context, id int64) ([]byte, error)
}
