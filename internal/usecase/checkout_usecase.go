package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// Quote is the live checkout view of the cart.
type Quote struct {
	entity.Totals
	Phase          entity.CheckoutPhase `json:"phase"`
	Method         entity.PaymentMethod `json:"method,omitempty"`
	AmountReceived int64                `json:"amountReceived"`
	// Change is received minus total; negative while cash is insufficient
	Change    int64 `json:"change"`
	ItemCount int   `json:"itemCount"`
}

// CheckoutUsecase defines the interface for the payment state machine
type CheckoutUsecase interface {
	// Quote returns the totals and the current checkout phase
	Quote(ctx context.Context) *Quote

	// SelectPaymentMethod moves the checkout to MethodSelected
	SelectPaymentMethod(ctx context.Context, method entity.PaymentMethod) (*Quote, error)

	// SetAmountReceived records the cash handed over by the customer
	SetAmountReceived(ctx context.Context, amount int64) (*Quote, error)

	// ConfirmPayment finalizes the cart into an order
	ConfirmPayment(ctx context.Context) (*entity.Order, error)

	// CancelCheckout returns the checkout to Idle
	CancelCheckout(ctx context.Context) *Quote
}
