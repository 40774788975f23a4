package repository

import (
	"context"

	"pos/internal/domain/entity"
)

// Fixed keys under which the state slices are persisted.
const (
	KeyCatalog  = "catalog"
	KeyOrders   = "orders"
	KeySettings = "settings"
)

// PersistedState is the durable subset of the application state.
type PersistedState struct {
	Catalog  entity.Catalog
	Orders   entity.Orders
	Settings entity.Settings
}

// StateRepository loads and saves the durable state slices.
// Failures never surface as errors: loads report whether a stored value was
// found and decoded, saves report whether the value reached the store.
type StateRepository interface {
	// LoadCatalog returns the stored catalog and whether one was found.
	LoadCatalog(ctx context.Context) (entity.Catalog, bool)

	// SaveCatalog persists the catalog.
	SaveCatalog(ctx context.Context, catalog entity.Catalog) bool

	// LoadOrders returns the stored orders and whether they were found.
	LoadOrders(ctx context.Context) (entity.Orders, bool)

	// SaveOrders persists the orders.
	SaveOrders(ctx context.Context, orders entity.Orders) bool

	// LoadSettings returns the stored settings and whether they were found.
	LoadSettings(ctx context.Context) (entity.Settings, bool)

	// SaveSettings persists the settings.
	SaveSettings(ctx context.Context, settings entity.Settings) bool

	// SaveAll persists every slice in one write.
	SaveAll(ctx context.Context, state PersistedState) bool
}
