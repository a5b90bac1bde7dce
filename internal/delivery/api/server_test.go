package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autosphere/config"
	"autosphere/internal/delivery/api/middleware"
	"autosphere/internal/delivery/api/response"
	"autosphere/internal/delivery/api/router"
	"autosphere/internal/delivery/api/router/handler"
	"autosphere/internal/infra/auth"
	"autosphere/internal/infra/idgen"
	"autosphere/internal/infra/persistence/memory"
	"autosphere/internal/infra/qrcode"
	"autosphere/internal/infra/seed"
	"autosphere/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	superadminLogin = `{"email":"superadmin@autosphere.com","password":"superadmin123"}`
	dealerLogin     = `{"email":"dealer@autosphere.com","password":"dealer123"}`
	customerLogin   = `{"email":"customer@autosphere.com","password":"customer123"}`
)

// createTestServer wires the full stack over an in-memory store loaded with the bundled seed.
func createTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog, err := seed.Load()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.HTTP.PublicBaseURL = "https://autosphere.test"

	kv := memory.NewKVStore()
	verifier := auth.NewPlaintextVerifier()
	session := impl.NewSessionService(kv, logger)
	inventory := impl.NewInventoryService(impl.InventoryServiceParams{KV: kv, IDs: idgen.NewAllocator(kv, logger), Seed: catalog, Logger: logger})
	directory := impl.NewDirectoryService(impl.DirectoryServiceParams{KV: kv, Verifier: verifier, Seed: catalog, Logger: logger})
	siteContent := impl.NewSiteContentService(kv, catalog, logger)
	garage := impl.NewGarageService(impl.GarageServiceParams{KV: kv, Session: session, Config: cfg, Seed: catalog, Logger: logger})
	account := impl.NewAccountService(impl.AccountServiceParams{
		Session:   session,
		Directory: directory,
		Inventory: inventory,
		Verifier:  verifier,
		Config:    cfg,
		Logger:    logger,
	})
	listing := impl.NewListingService(impl.ListingServiceParams{
		Session:     session,
		Inventory:   inventory,
		Directory:   directory,
		SiteContent: siteContent,
		QRCode:      qrcode.NewQRCodeService(cfg),
		Logger:      logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		Session:     session,
		Inventory:   inventory,
		SiteContent: siteContent,
		Garage:      garage,
		Logger:      logger,
	})

	return NewEcho(cfg, logger, router.RouterParams{
		HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{KV: kv, Logger: logger}),
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: account, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, ListingUC: listing, Logger: logger}),
		GarageHandler:  handler.NewGarageHandler(handler.GarageHandlerParams{GarageUC: garage, CatalogUC: catalogUC, Logger: logger}),
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: listing, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AccountUC: account, CatalogUC: catalogUC, Logger: logger}),
		RoleMiddleware: middleware.NewRoleMiddleware(middleware.RoleMiddlewareParams{Session: session, Logger: logger}),
	})
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T                  `json:"data"`
		Meta *response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Meta)
	assert.NotEmpty(t, envelope.Meta.RequestID)

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return *envelope.Error
}

func TestServer_Health(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_UnknownRoute(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestServer_Browse(t *testing.T) {
	e := createTestServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantErr  string
		check    func(t *testing.T, cars []map[string]any)
	}{
		{
			name:     "whole catalog sorted by price ascending",
			target:   "/cars",
			wantCode: http.StatusOK,
			check: func(t *testing.T, cars []map[string]any) {
				require.Len(t, cars, 8)
				for i := 1; i < len(cars); i++ {
					assert.LessOrEqual(t, cars[i-1]["price"].(float64), cars[i]["price"].(float64))
				}
			},
		},
		{
			name:     "filter by make",
			target:   "/cars?make=Tesla",
			wantCode: http.StatusOK,
			check: func(t *testing.T, cars []map[string]any) {
				require.NotEmpty(t, cars)
				for _, car := range cars {
					assert.Equal(t, "Tesla", car["make"])
				}
			},
		},
		{
			name:     "unsupported sort",
			target:   "/cars?sort=color",
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
				return
			}

			out := decodeData[struct {
				Cars []map[string]any `json:"cars"`
			}](t, rec)
			tt.check(t, out.Cars)
		})
	}
}

func TestServer_CarDetail(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/cars/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	car := decodeData[map[string]any](t, rec)
	assert.Equal(t, float64(1), car["id"])

	rec = doRequest(e, http.MethodGet, "/cars/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodGet, "/cars/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CAR_NOT_FOUND", decodeError(t, rec).Code)
}

func TestServer_CarQRCode(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/cars/1/qrcode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestServer_Home(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/home", "")

	require.Equal(t, http.StatusOK, rec.Code)
	home := decodeData[struct {
		SiteName      string           `json:"siteName"`
		NewArrivals   []map[string]any `json:"newArrivals"`
		DealOfTheWeek map[string]any   `json:"dealOfTheWeek"`
	}](t, rec)
	assert.Equal(t, "AutoSphere", home.SiteName)
	assert.Len(t, home.NewArrivals, 2)
	require.NotNil(t, home.DealOfTheWeek)
	assert.Equal(t, float64(5), home.DealOfTheWeek["id"])
}

func TestServer_Auth(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodPost, "/auth/login", `{"email":"customer@autosphere.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodPost, "/auth/login", customerLogin)
	require.Equal(t, http.StatusOK, rec.Code)
	principal := decodeData[map[string]any](t, rec)
	assert.Equal(t, "customer@autosphere.com", principal["email"])
	assert.NotContains(t, principal, "password")

	rec = doRequest(e, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPatch, "/auth/me", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_PATCH", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodPatch, "/auth/me", `{"phone":"+1 555 0100"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+1 555 0100", decodeData[map[string]any](t, rec)["phone"])

	rec = doRequest(e, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Register_Validation(t *testing.T) {
	e := createTestServer(t)

	body := `{"fname":"Ada","lname":"Obi","email":"ada@example.com","phone":"1","country":"NG","state":"Lagos","password":"secret1","confirmPassword":"secret2"}`
	rec := doRequest(e, http.MethodPost, "/auth/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, rec.Body.String(), "eqfield")

	rec = doRequest(e, http.MethodPost, "/auth/register", strings.Replace(body, "secret2", "secret1", 1))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "customer", decodeData[map[string]any](t, rec)["role"])

	rec = doRequest(e, http.MethodPost, "/auth/register", strings.Replace(body, "secret2", "secret1", 1))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_Garage(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/garage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/garage/compare", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/auth/login", customerLogin).Code)

	rec = doRequest(e, http.MethodPost, "/garage/favorites/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.ToggleResponse{CarID: 2, Active: true}, decodeData[handler.ToggleResponse](t, rec))

	require.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/cars/3", "").Code)

	rec = doRequest(e, http.MethodPost, "/garage/test-drives", `{"carId":3,"bookingDate":"2026-11-02","location":"Lagos"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	drive := decodeData[map[string]any](t, rec)
	assert.Equal(t, "Pending", drive["status"])

	rec = doRequest(e, http.MethodPost, "/garage/test-drives/999/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodGet, "/garage", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeData[struct {
		Favorites      []map[string]any `json:"favorites"`
		RecentlyViewed []map[string]any `json:"recentlyViewed"`
	}](t, rec)
	require.Len(t, snapshot.Favorites, 1)
	assert.Equal(t, float64(2), snapshot.Favorites[0]["id"])
	require.Len(t, snapshot.RecentlyViewed, 1)
	assert.Equal(t, float64(3), snapshot.RecentlyViewed[0]["id"])
}

func TestServer_Listings_RoleGuard(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(e, http.MethodGet, "/dealer/listings", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	require.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/auth/login", customerLogin).Code)
	rec = doRequest(e, http.MethodGet, "/dealer/listings", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodGet, "/superadmin/users", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Listings_DealerLifecycle(t *testing.T) {
	e := createTestServer(t)
	require.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/auth/login", dealerLogin).Code)

	rec := doRequest(e, http.MethodGet, "/dealer/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]map[string]any](t, rec), 8)

	draft := `{"make":"Kia","model":"EV6","year":2024,"price":50000,"mileage":0,"fuelType":"Electric","transmission":"Automatic","images":["https://example.com/ev6.jpg"],"condition":"New"}`
	rec = doRequest(e, http.MethodPost, "/dealer/listings", draft)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[map[string]any](t, rec)
	assert.Equal(t, float64(9), created["id"])
	assert.Equal(t, "dealer@autosphere.com", created["dealerId"])

	rec = doRequest(e, http.MethodPut, "/dealer/listings/9", strings.Replace(draft, "50000", "47000", 1))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(47000), decodeData[map[string]any](t, rec)["price"])

	rec = doRequest(e, http.MethodPost, "/dealer/listings", `{"make":"Kia"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodDelete, "/dealer/listings/9", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodGet, "/cars/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Superadmin(t *testing.T) {
	e := createTestServer(t)
	require.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/auth/login", superadminLogin).Code)

	rec := doRequest(e, http.MethodGet, "/superadmin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]map[string]any](t, rec), 3)

	rec = doRequest(e, http.MethodPatch, "/superadmin/users/customer@autosphere.com", `{"status":"Blocked"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Blocked", decodeData[map[string]any](t, rec)["status"])

	rec = doRequest(e, http.MethodPut, "/superadmin/site-content", `{"siteName":"AutoSphere Lagos"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AutoSphere Lagos", decodeData[map[string]any](t, rec)["siteName"])

	rec = doRequest(e, http.MethodDelete, "/superadmin/users/superadmin@autosphere.com", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/superadmin/users/dealer@autosphere.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(8), decodeData[map[string]any](t, rec)["removedListings"])

	rec = doRequest(e, http.MethodGet, "/cars", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[struct {
		Cars []map[string]any `json:"cars"`
	}](t, rec).Cars)

	require.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/auth/logout", "").Code)
	rec = doRequest(e, http.MethodPost, "/auth/login", customerLogin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_BLOCKED", decodeError(t, rec).Code)
}
