package persistence

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"pos/config"
	"pos/internal/infra/persistence/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	cfg := &config.Config{}
	cfg.Storage.Driver = driver
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "pos.db")

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewKVStore_Memory(t *testing.T) {
	store, err := NewKVStore(newParams(t, "memory"))
	require.NoError(t, err)

	assert.IsType(t, &memstore.Store{}, store)
}

func TestNewKVStore_SQLite(t *testing.T) {
	params := newParams(t, "sqlite")
	lc := params.Lc.(*fxtest.Lifecycle)

	store, err := NewKVStore(params)
	require.NoError(t, err)
	assert.NotNil(t, store)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewKVStore_UnknownDriver(t *testing.T) {
	_, err := NewKVStore(newParams(t, "cassandra"))
	assert.Error(t, err)
}
