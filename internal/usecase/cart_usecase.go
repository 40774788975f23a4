package usecase

import (
	"context"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"
)

// CartView is the cart with its live totals.
type CartView struct {
	Lines     entity.Cart   `json:"lines"`
	ItemCount int           `json:"itemCount"`
	Totals    entity.Totals `json:"totals"`
}

// CartUsecase defines the interface for cart editing with stock reservation
type CartUsecase interface {
	// GetCart returns the current cart
	GetCart(ctx context.Context) *CartView

	// AddToCart adds one unit of an item, reserving product stock
	AddToCart(ctx context.Context, itemID int64) (*CartView, error)

	// AdjustQuantity changes the quantity of a cart line by delta
	AdjustQuantity(ctx context.Context, itemID int64, delta int) (*CartView, error)

	// ClearCart returns all reserved stock and empties the cart after confirmation
	ClearCart(ctx context.Context, confirmer service.Confirmer) error
}
