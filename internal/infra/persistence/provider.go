// Package persistence selects and wires the key-value backend.
package persistence

import (
	"log/slog"

	"pos/config"
	"pos/internal/domain/constants"
	"pos/internal/domain/repository"
	"pos/internal/infra/persistence/kv"
	"pos/internal/infra/persistence/memstore"
	"pos/internal/infra/persistence/redisstore"
	"pos/internal/infra/persistence/sqlstore"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the backend, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore creates the backend named by storage.driver.
func NewKVStore(params Params) (repository.KVStore, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Storage.Driver {
	case constants.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		return memstore.New(), nil

	case constants.StorageDriverSQLite, constants.StorageDriverPostgres:
		db, err := sqlstore.Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.RegisterLifecycle(params.Lc, db, logger); err != nil {
			return nil, err
		}
		logger.Info("Using SQL storage", slog.String("driver", cfg.Storage.Driver))

		return sqlstore.NewKVStore(db), nil

	case constants.StorageDriverRedis:
		client := redisstore.NewClient(params.Lc, cfg, logger)
		logger.Info("Using Redis storage", slog.String("addr", cfg.Storage.Redis.Addr))

		return redisstore.New(client, cfg.Storage.Redis.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKVStore,
		kv.NewGateway,
		kv.NewStateRepository,
	),
)
