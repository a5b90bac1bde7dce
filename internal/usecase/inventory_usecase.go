package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// InventoryUsecase manages the car listings.
type InventoryUsecase interface {
	AddCar(ctx context.Context, draft entity.CarDraft, dealerID string) (*entity.Car, error)
	UpdateCar(ctx context.Context, car entity.Car) (*entity.Car, error)
	DeleteCar(ctx context.Context, id int64) error
	// DeleteCarsByDealer removes every listing owned by the dealer and reports how many were removed.
	DeleteCarsByDealer(ctx context.Context, dealerID string) (int, error)

	List(ctx context.Context) []entity.Car
	Get(ctx context.Context, id int64) (*entity.Car, error)
	// ListByIDs returns the cars in the order of ids, skipping unknown ids.
	ListByIDs(ctx context.Context, ids []int64) []entity.Car
	ListByDealer(ctx context.Context, dealerID string) []entity.Car
	// Makes returns the distinct makes in sorted order.
	Makes(ctx context.Context) []string
	Search(ctx context.Context, query entity.InventoryQuery) ([]entity.Car, error)
}
