package kv

import (
	"context"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
)

type stateRepository struct {
	gateway *Gateway
}

// NewStateRepository stores each state slice under its fixed key.
func NewStateRepository(gateway *Gateway) repository.StateRepository {
	return &stateRepository{gateway: gateway}
}

func (r *stateRepository) LoadCatalog(ctx context.Context) (entity.Catalog, bool) {
	catalog := entity.Catalog{}
	ok := r.gateway.Load(ctx, repository.KeyCatalog, &catalog)

	return catalog, ok
}

func (r *stateRepository) SaveCatalog(ctx context.Context, catalog entity.Catalog) bool {
	return r.gateway.Save(ctx, repository.KeyCatalog, nonNil(catalog))
}

func (r *stateRepository) LoadOrders(ctx context.Context) (entity.Orders, bool) {
	orders := entity.Orders{}
	ok := r.gateway.Load(ctx, repository.KeyOrders, &orders)

	return orders, ok
}

func (r *stateRepository) SaveOrders(ctx context.Context, orders entity.Orders) bool {
	return r.gateway.Save(ctx, repository.KeyOrders, nonNil(orders))
}

func (r *stateRepository) LoadSettings(ctx context.Context) (entity.Settings, bool) {
	settings := entity.DefaultSettings()
	ok := r.gateway.Load(ctx, repository.KeySettings, &settings)

	return settings, ok
}

func (r *stateRepository) SaveSettings(ctx context.Context, settings entity.Settings) bool {
	return r.gateway.Save(ctx, repository.KeySettings, settings)
}

func (r *stateRepository) SaveAll(ctx context.Context, state repository.PersistedState) bool {
	return r.gateway.SaveMany(ctx, map[string]any{
		repository.KeyCatalog:  nonNil(state.Catalog),
		repository.KeyOrders:   nonNil(state.Orders),
		repository.KeySettings: state.Settings,
	})
}

// nonNil keeps empty slices encoded as [] instead of null.
func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}
