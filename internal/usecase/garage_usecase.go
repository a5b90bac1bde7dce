package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// GarageUsecase manages the data derived for the active principal (or the guest).
type GarageUsecase interface {
	// ToggleFavorite flips membership and returns whether the car is now a favorite.
	ToggleFavorite(ctx context.Context, carID int64) (bool, error)
	// AddRecentlyViewed is a no-op when nobody is signed in.
	AddRecentlyViewed(ctx context.Context, carID int64) error
	// ToggleCompare flips membership and returns whether the car is now being compared.
	ToggleCompare(ctx context.Context, carID int64) (bool, error)
	ClearCompare(ctx context.Context) error

	BookTestDrive(ctx context.Context, input BookTestDriveInput) (*entity.TestDrive, error)
	CancelTestDrive(ctx context.Context, id int64) (*entity.TestDrive, error)
	RescheduleTestDrive(ctx context.Context, id int64, bookingDate string) (*entity.TestDrive, error)

	Snapshot(ctx context.Context) entity.Garage
}

// BookTestDriveInput defines the data required to book a test drive.
type BookTestDriveInput struct {
	CarID       int64  `json:"carId" validate:"required,gt=0"`
	BookingDate string `json:"bookingDate" validate:"required"`
	Location    string `json:"location" validate:"required"`
}
