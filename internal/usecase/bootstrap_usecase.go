package usecase

import "context"

// BootstrapUsecase loads the persisted state into the state store at startup
type BootstrapUsecase interface {
	// LoadInitialData reads catalog, orders and settings, seeding defaults when absent
	LoadInitialData(ctx context.Context) error
}
