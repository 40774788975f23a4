package usecase

import (
	"context"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"
)

// OrderUsecase defines the interface for the sales history
type OrderUsecase interface {
	// ListOrders returns every order, newest first
	ListOrders(ctx context.Context) entity.Orders

	// GetOrder returns one order by number
	GetOrder(ctx context.Context, orderNumber string) (*entity.Order, error)

	// DeleteOrder removes an order after confirmation
	DeleteOrder(ctx context.Context, orderNumber string, confirmer service.Confirmer) error

	// ReceiptQR renders the receipt QR code of an order as PNG
	ReceiptQR(ctx context.Context, orderNumber string) ([]byte, error)
}
