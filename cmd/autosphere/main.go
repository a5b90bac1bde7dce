package main

import (
	"context"
	"log/slog"
	"os"

	"autosphere/config"
	"autosphere/internal/delivery"
	"autosphere/internal/delivery/api"
	"autosphere/internal/delivery/api/middleware"
	"autosphere/internal/delivery/api/router/handler"
	"autosphere/internal/infra/auth"
	"autosphere/internal/infra/idgen"
	logs "autosphere/internal/infra/log"
	"autosphere/internal/infra/persistence"
	"autosphere/internal/infra/qrcode"
	"autosphere/internal/infra/seed"
	"autosphere/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.NewKVStore,
		seed.Load,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCredentialVerifier,
			idgen.NewAllocator,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewInventoryService,
			impl.NewDirectoryService,
			impl.NewSiteContentService,
			impl.NewGarageService,
			impl.NewAccountService,
			impl.NewListingService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRoleMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewGarageHandler,
			handler.NewListingHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
