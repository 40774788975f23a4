package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// SettingsInput is the settings form submission.
type SettingsInput struct {
	TaxEnabled   bool    `json:"taxEnabled"`
	TaxRate      float64 `json:"taxRate" validate:"gte=0,lte=100"`
	CashierLabel string  `json:"cashierLabel" validate:"max=60"`
	StoreName    string  `json:"storeName" validate:"required,max=120"`
}

// SettingsUsecase defines the interface for shop settings
type SettingsUsecase interface {
	// GetSettings returns the current settings
	GetSettings(ctx context.Context) entity.Settings

	// UpdateSettings replaces the settings
	UpdateSettings(ctx context.Context, input *SettingsInput) (*entity.Settings, error)
}
