package auth

import (
	"context"
	"strings"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
)

// configCashierRepository serves the operator accounts listed under auth.cashiers.
type configCashierRepository struct {
	cashiers map[string]entity.Cashier
}

// NewConfigCashierRepository indexes the configured cashiers by lower-cased username.
func NewConfigCashierRepository(cfg *config.Config) repository.CashierRepository {
	repo := &configCashierRepository{cashiers: make(map[string]entity.Cashier)}
	if cfg == nil || cfg.Auth == nil {
		return repo
	}

	for _, c := range cfg.Auth.Cashiers {
		username := strings.ToLower(strings.TrimSpace(c.Username))
		if username == "" {
			continue
		}
		repo.cashiers[username] = entity.Cashier{
			Username:     username,
			PasswordHash: c.PasswordHash,
			Label:        c.Label,
		}
	}

	return repo
}

func (r *configCashierRepository) FindByUsername(_ context.Context, username string) (*entity.Cashier, error) {
	cashier, ok := r.cashiers[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, repository.ErrCashierNotFound
	}

	return &cashier, nil
}
