package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/service"
	"autosphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var sellerRoles = []entity.Role{entity.RoleDealer, entity.RoleSuperadmin}

// listingService implements the ListingUsecase interface.
type listingService struct {
	session     usecase.SessionUsecase
	inventory   usecase.InventoryUsecase
	directory   usecase.DirectoryUsecase
	siteContent usecase.SiteContentUsecase
	qrCode      service.QRCodeService
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	Session     usecase.SessionUsecase
	Inventory   usecase.InventoryUsecase
	Directory   usecase.DirectoryUsecase
	SiteContent usecase.SiteContentUsecase
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		session:     params.Session,
		inventory:   params.Inventory,
		directory:   params.Directory,
		siteContent: params.SiteContent,
		qrCode:      params.QRCode,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) MyListings(ctx context.Context) ([]entity.Car, error) {
	seller, err := requireRole(ctx, srv.session, sellerRoles...)
	if err != nil {
		return nil, err
	}

	if seller.Role == entity.RoleSuperadmin {
		return srv.inventory.List(ctx), nil
	}

	return srv.inventory.ListByDealer(ctx, seller.Email), nil
}

func (srv *listingService) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.Car, error) {
	seller, err := requireRole(ctx, srv.session, sellerRoles...)
	if err != nil {
		return nil, err
	}

	dealerID := seller.Email
	if seller.Role == entity.RoleSuperadmin {
		dealerID, err = srv.resolveDealer(ctx, input.DealerID)
		if err != nil {
			return nil, err
		}
	}

	car, err := srv.inventory.AddCar(ctx, input.Draft, dealerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created",
		slog.Int64("carID", car.ID),
		slog.String("dealerID", dealerID),
		slog.String("by", seller.Email),
	)

	return car, nil
}

// resolveDealer checks that a superadmin listed the car under an existing dealer.
func (srv *listingService) resolveDealer(ctx context.Context, dealerID string) (string, error) {
	dealerID = strings.TrimSpace(dealerID)
	if dealerID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("dealerId is required")
	}

	dealer, ok := srv.directory.Find(ctx, dealerID)
	if !ok || dealer.Role != entity.RoleDealer {
		return "", domainerrors.ErrValidationFailed.WithDetails("dealerId must name a registered dealer")
	}

	return dealer.Email, nil
}

func (srv *listingService) UpdateListing(ctx context.Context, id int64, draft entity.CarDraft) (*entity.Car, error) {
	existing, err := srv.ownedListing(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.inventory.UpdateCar(ctx, entity.NewCar(existing.ID, existing.DealerID, draft))
}

func (srv *listingService) DeleteListing(ctx context.Context, id int64) error {
	existing, err := srv.ownedListing(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.inventory.DeleteCar(ctx, existing.ID); err != nil {
		return err
	}

	// The deal of the week must not point at a removed listing.
	deal := srv.siteContent.Get(ctx).DealOfTheWeekCarID
	if deal != nil && *deal == existing.ID {
		if _, err := srv.siteContent.ClearDealOfTheWeek(ctx); err != nil {
			return errors.Wrap(err, "failed to clear deal of the week")
		}
		srv.log(ctx).Info("Deal of the week cleared", slog.Int64("carID", existing.ID))
	}

	return nil
}

// ownedListing returns the listing when the seller may modify it.
func (srv *listingService) ownedListing(ctx context.Context, id int64) (*entity.Car, error) {
	seller, err := requireRole(ctx, srv.session, sellerRoles...)
	if err != nil {
		return nil, err
	}

	car, err := srv.inventory.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if seller.Role != entity.RoleSuperadmin && !car.OwnedBy(seller.Email) {
		return nil, domainerrors.ErrForbidden.WithDetails("listing belongs to another dealer")
	}

	return car, nil
}

func (srv *listingService) ListingQRCode(ctx context.Context, id int64) ([]byte, error) {
	car, err := srv.inventory.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateListingQR(car.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}
