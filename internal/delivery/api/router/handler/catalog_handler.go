package handler

import (
	"log/slog"
	"net/http"

	"autosphere/internal/delivery/api/response"
	"autosphere/internal/domain/entity"
	"autosphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public storefront pages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// Browse lists the inventory with the search, make, condition and sort query parameters.
func (h *CatalogHandler) Browse(c echo.Context) error {
	var query entity.InventoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory query")
	}

	out, err := h.catalogUC.Browse(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// CarDetail returns one car and records it as recently viewed.
func (h *CatalogHandler) CarDetail(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	car, err := h.catalogUC.CarDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, car)
}

// CarQRCode returns a PNG QR code linking to the car's public page.
func (h *CatalogHandler) CarQRCode(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	png, err := h.listingUC.ListingQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// Home returns the landing page sections.
func (h *CatalogHandler) Home(c echo.Context) error {
	out, err := h.catalogUC.Home(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// SiteContent returns the editable storefront content.
func (h *CatalogHandler) SiteContent(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.SiteContent(c.Request().Context()))
}
