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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the superadmin dashboard.
type AdminHandler struct {
	accountUC usecase.AccountUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC: params.AccountUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

func (h *AdminHandler) AddUser(c echo.Context) error {
	var req usecase.AddUserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.accountUC.AddUser(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

func (h *AdminHandler) EditUser(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_EMAIL", "Invalid email")
	}

	var patch entity.PrincipalPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&patch); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.accountUC.EditUser(c.Request().Context(), email, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account; a dealer's listings go with it.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_EMAIL", "Invalid email")
	}

	out, err := h.accountUC.DeleteUser(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateSiteContent merges the submitted top-level fields into the site content.
func (h *AdminHandler) UpdateSiteContent(c echo.Context) error {
	var patch entity.SiteContentPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site content input")
	}

	content, err := h.catalogUC.UpdateSiteContent(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, content)
}
