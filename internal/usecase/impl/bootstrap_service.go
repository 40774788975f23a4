package impl

import (
	"context"
	"log/slog"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
	"pos/internal/state"
	"pos/internal/usecase"
)

type bootstrapService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	logger    *slog.Logger
}

// NewBootstrapService creates the startup loader
func NewBootstrapService(store *state.Store, stateRepo repository.StateRepository, logger *slog.Logger) usecase.BootstrapUsecase {
	return &bootstrapService{
		store:     store,
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// LoadInitialData replaces the store content with the persisted slices.
// A missing or unreadable catalog or settings is seeded with the defaults
// and written back; missing orders start an empty history.
func (s *bootstrapService) LoadInitialData(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	items, found := s.stateRepo.LoadCatalog(ctx)
	if !found {
		items = entity.DefaultCatalog()
		s.stateRepo.SaveCatalog(ctx, items)
		s.logger.Info("Seeded default catalog", slog.Int("items", len(items)))
	}

	orders, found := s.stateRepo.LoadOrders(ctx)
	if !found || orders == nil {
		orders = entity.Orders{}
	}

	settings, found := s.stateRepo.LoadSettings(ctx)
	if !found || !settings.IsValid() {
		settings = entity.DefaultSettings()
		s.stateRepo.SaveSettings(ctx, settings)
	}

	if items == nil {
		items = entity.Catalog{}
	}

	idle := entity.IdleCheckout()
	ui := entity.DefaultUIState()
	s.store.SetState(state.Patch{
		Catalog:  items,
		Cart:     entity.Cart{},
		Orders:   orders,
		Settings: &settings,
		UI:       &ui,
		Checkout: &idle,
	})

	s.logger.Info("Initial data loaded",
		slog.Int("items", len(items)),
		slog.Int("orders", len(orders)),
	)

	return nil
}
