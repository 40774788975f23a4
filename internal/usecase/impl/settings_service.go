package impl

import (
	"context"
	"log/slog"
	"strings"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/state"
	"pos/internal/usecase"
)

type settingsService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	logger    *slog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(
	store *state.Store,
	stateRepo repository.StateRepository,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		store:     store,
		stateRepo: stateRepo,
		logger:    logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) entity.Settings {
	return s.store.GetState().Settings
}

func (s *settingsService) UpdateSettings(ctx context.Context, input *usecase.SettingsInput) (*entity.Settings, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidSettings
	}

	settings := entity.Settings{
		TaxEnabled:   input.TaxEnabled,
		TaxRate:      input.TaxRate,
		CashierLabel: strings.TrimSpace(input.CashierLabel),
		StoreName:    strings.TrimSpace(input.StoreName),
	}
	if !settings.IsValid() {
		return nil, domainerrors.ErrInvalidSettings.WithDetails("tarif pajak harus 0..100")
	}

	err := s.store.Mutate(func(entity.AppState) (state.Patch, error) {
		s.stateRepo.SaveSettings(ctx, settings)

		return state.Patch{Settings: &settings}, nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Info("Settings updated",
		slog.Bool("tax_enabled", settings.TaxEnabled),
		slog.Float64("tax_rate", settings.TaxRate),
	)

	return &settings, nil
}
