// Package router contains routing setup for the storefront HTTP API.
package router

import (
	"autosphere/internal/delivery/api/middleware"
	"autosphere/internal/delivery/api/router/handler"
	"autosphere/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	GarageHandler  *handler.GarageHandler
	ListingHandler *handler.ListingHandler
	AdminHandler   *handler.AdminHandler
	RoleMiddleware *middleware.RoleMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	garageHandler  *handler.GarageHandler
	listingHandler *handler.ListingHandler
	adminHandler   *handler.AdminHandler
	roleMiddleware *middleware.RoleMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		garageHandler:  params.GarageHandler,
		listingHandler: params.ListingHandler,
		adminHandler:   params.AdminHandler,
		roleMiddleware: params.RoleMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Public storefront
	e.GET("/home", r.catalogHandler.Home)
	e.GET("/site-content", r.catalogHandler.SiteContent)
	carsGroup := e.Group("/cars")
	{
		carsGroup.GET("", r.catalogHandler.Browse)
		carsGroup.GET("/:id", r.catalogHandler.CarDetail)
		carsGroup.GET("/:id/qrcode", r.catalogHandler.CarQRCode)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.roleMiddleware.RequireSession)
		authGroup.PATCH("/me", r.authHandler.UpdateProfile, r.roleMiddleware.RequireSession)
		authGroup.POST("/password", r.authHandler.ChangePassword, r.roleMiddleware.RequireSession)
	}

	// Clearing the compare set works signed out as well
	e.DELETE("/garage/compare", r.garageHandler.ClearCompare)

	garageGroup := e.Group("/garage")
	garageGroup.Use(r.roleMiddleware.RequireSession)
	{
		garageGroup.GET("", r.garageHandler.GetGarage)
		garageGroup.POST("/favorites/:carId", r.garageHandler.ToggleFavorite)
		garageGroup.POST("/compare/:carId", r.garageHandler.ToggleCompare)
		garageGroup.POST("/test-drives", r.garageHandler.BookTestDrive)
		garageGroup.POST("/test-drives/:id/cancel", r.garageHandler.CancelTestDrive)
		garageGroup.POST("/test-drives/:id/reschedule", r.garageHandler.RescheduleTestDrive)
	}

	// Dealer dashboard; superadmins manage every listing
	dealerGroup := e.Group("/dealer")
	dealerGroup.Use(r.roleMiddleware.RequireRole(entity.RoleDealer, entity.RoleSuperadmin))
	{
		dealerGroup.GET("/listings", r.listingHandler.MyListings)
		dealerGroup.POST("/listings", r.listingHandler.CreateListing)
		dealerGroup.PUT("/listings/:id", r.listingHandler.UpdateListing)
		dealerGroup.DELETE("/listings/:id", r.listingHandler.DeleteListing)
	}

	adminGroup := e.Group("/superadmin")
	adminGroup.Use(r.roleMiddleware.RequireRole(entity.RoleSuperadmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.AddUser)
		adminGroup.PATCH("/users/:email", r.adminHandler.EditUser)
		adminGroup.DELETE("/users/:email", r.adminHandler.DeleteUser)
		adminGroup.PUT("/site-content", r.adminHandler.UpdateSiteContent)
	}
}
