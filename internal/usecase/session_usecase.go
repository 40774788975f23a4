package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// SessionUsecase defines the interface for cashier login
type SessionUsecase interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, username, password string) (*entity.TokenPair, error)

	// Authenticate validates an access token
	Authenticate(ctx context.Context, accessToken string) (*entity.CashierClaims, error)
}
