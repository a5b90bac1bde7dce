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

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves the dealer listing pages.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest is the listing form. DealerID is read only for superadmins.
type CreateListingRequest struct {
	entity.CarDraft

	DealerID string `json:"dealerId"`
}

// MyListings returns the listings the caller manages.
func (h *ListingHandler) MyListings(c echo.Context) error {
	cars, err := h.listingUC.MyListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cars)
}

// CreateListing adds a listing.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	car, err := h.listingUC.CreateListing(c.Request().Context(), usecase.CreateListingInput{
		Draft:    req.CarDraft,
		DealerID: req.DealerID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, car)
}

// UpdateListing replaces a listing's details, keeping its id and owner.
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	var draft entity.CarDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&draft); err != nil {
		return response.ValidationError(c, err)
	}

	car, err := h.listingUC.UpdateListing(c.Request().Context(), id, draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, car)
}

// DeleteListing removes a listing.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
