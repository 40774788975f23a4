package repository

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCashierNotFound is returned when no cashier has the given username.
var ErrCashierNotFound = errors.New("cashier not found")

// CashierRepository looks up the operators allowed to use the register.
type CashierRepository interface {
	// FindByUsername retrieves a cashier by username.
	FindByUsername(ctx context.Context, username string) (*entity.Cashier, error)
}
