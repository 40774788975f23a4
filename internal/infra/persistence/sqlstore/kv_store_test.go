package sqlstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"pos/config"
	"pos/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "data", "pos.db")

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestKVStore_GetMissingKey(t *testing.T) {
	store := NewKVStore(openTestDB(t))

	_, err := store.Get(context.Background(), "catalog")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, "settings", []byte(`{"taxEnabled":false}`)))
	require.NoError(t, store.Set(ctx, "settings", []byte(`{"taxEnabled":true}`)))

	value, err := store.Get(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"taxEnabled":true}`, string(value))
}

func TestKVStore_SetManyAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"catalog": []byte(`[]`),
		"orders":  []byte(`[{"orderNumber":"ORD-1"}]`),
	}))

	orders, err := store.Get(ctx, "orders")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"orderNumber":"ORD-1"}]`, string(orders))

	require.NoError(t, store.Delete(ctx, "orders"))
	require.NoError(t, store.Delete(ctx, "orders"))

	_, err = store.Get(ctx, "orders")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	_, err = store.Get(ctx, "catalog")
	assert.NoError(t, err)
}

func TestOpen_RejectsNonSQLDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "redis"

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestOpen_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "postgres"

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
