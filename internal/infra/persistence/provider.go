// Package persistence selects and wires the configured key-value backend.
package persistence

import (
	"context"
	"log/slog"

	"autosphere/config"
	"autosphere/internal/domain/repository"
	"autosphere/internal/infra/persistence/memory"
	"autosphere/internal/infra/persistence/postgres"
	"autosphere/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore opens the backend named by storage.driver and closes it when the application stops.
func NewKVStore(params Params) (repository.KVStore, error) {
	store, err := open(params)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("KV store ready", slog.String("driver", params.Config.Storage.Driver))

	return store, nil
}

func open(params Params) (repository.KVStore, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		return memory.NewKVStore(), nil
	case config.StorageDriverSQLite:
		return sqlite.Open(params.Config.Storage.Path, params.Logger)
	case config.StorageDriverPostgres:
		db, err := postgres.Open(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		return postgres.NewKVStore(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %q", params.Config.Storage.Driver)
	}
}
