package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// SiteContentUsecase manages the singleton storefront content.
type SiteContentUsecase interface {
	Get(ctx context.Context) entity.SiteContent
	Update(ctx context.Context, patch entity.SiteContentPatch) (*entity.SiteContent, error)
	ClearDealOfTheWeek(ctx context.Context) (*entity.SiteContent, error)
}
