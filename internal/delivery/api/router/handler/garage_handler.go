package handler

import (
	"log/slog"
	"net/http"

	"autosphere/internal/delivery/api/response"
	"autosphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GarageHandlerParams holds dependencies for GarageHandler, injected by Fx.
type GarageHandlerParams struct {
	fx.In

	GarageUC  usecase.GarageUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// GarageHandler serves the signed-in principal's garage.
type GarageHandler struct {
	garageUC  usecase.GarageUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewGarageHandler is the constructor for GarageHandler
func NewGarageHandler(params GarageHandlerParams) *GarageHandler {
	return &GarageHandler{
		garageUC:  params.GarageUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ToggleResponse reports a car's membership after a toggle.
type ToggleResponse struct {
	CarID  int64 `json:"carId"`
	Active bool  `json:"active"`
}

// RescheduleRequest represents the request body for moving a test drive
type RescheduleRequest struct {
	BookingDate string `json:"bookingDate" validate:"required"`
}

// GetGarage returns favorites, recently viewed and compare resolved to cars, with test drives and purchases.
func (h *GarageHandler) GetGarage(c echo.Context) error {
	out, err := h.catalogUC.Garage(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ToggleFavorite adds or removes a favorite.
func (h *GarageHandler) ToggleFavorite(c echo.Context) error {
	carID, err := int64Param(c, "carId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	active, err := h.garageUC.ToggleFavorite(c.Request().Context(), carID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleResponse{CarID: carID, Active: active})
}

// ToggleCompare adds or removes a car from the compare set.
func (h *GarageHandler) ToggleCompare(c echo.Context) error {
	carID, err := int64Param(c, "carId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	active, err := h.garageUC.ToggleCompare(c.Request().Context(), carID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleResponse{CarID: carID, Active: active})
}

// ClearCompare empties the compare set.
func (h *GarageHandler) ClearCompare(c echo.Context) error {
	if err := h.garageUC.ClearCompare(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// BookTestDrive books a new test drive.
func (h *GarageHandler) BookTestDrive(c echo.Context) error {
	var req usecase.BookTestDriveInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test drive input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	drive, err := h.garageUC.BookTestDrive(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, drive)
}

// CancelTestDrive cancels a test drive.
func (h *GarageHandler) CancelTestDrive(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid test drive ID")
	}

	drive, err := h.garageUC.CancelTestDrive(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, drive)
}

// RescheduleTestDrive moves a test drive to a new date.
func (h *GarageHandler) RescheduleTestDrive(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid test drive ID")
	}

	var req RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reschedule input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	drive, err := h.garageUC.RescheduleTestDrive(c.Request().Context(), id, req.BookingDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, drive)
}
