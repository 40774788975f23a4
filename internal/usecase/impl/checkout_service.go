package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/state"
	"pos/internal/usecase"

	"go.uber.org/fx"
)

const orderNumberPrefix = "ORD-"

// orderNumbers hands out ORD-<unix millis> numbers that never repeat within
// the process, even when two checkouts land in the same millisecond.
type orderNumbers struct {
	mu   sync.Mutex
	last int64
}

func (g *orderNumbers) next(now time.Time, existing entity.Orders) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := max(now.UnixMilli(), g.last+1)
	for existing.IndexOf(formatOrderNumber(n)) >= 0 {
		n++
	}
	g.last = n

	return formatOrderNumber(n)
}

func formatOrderNumber(n int64) string {
	return fmt.Sprintf("%s%d", orderNumberPrefix, n)
}

type checkoutService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	publisher service.EventPublisher
	metrics   service.SalesMetrics
	logger    *slog.Logger
	numbers   *orderNumbers
	now       func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Store     *state.Store
	StateRepo repository.StateRepository
	Publisher service.EventPublisher
	Metrics   service.SalesMetrics
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		store:     params.Store,
		stateRepo: params.StateRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		numbers:   &orderNumbers{},
		now:       time.Now,
	}
}

// Quote returns the live totals of the cart
func (s *checkoutService) Quote(ctx context.Context) *usecase.Quote {
	return newQuote(s.store.GetState())
}

// SelectPaymentMethod picks how the customer pays. Reselecting clears the received amount.
func (s *checkoutService) SelectPaymentMethod(ctx context.Context, method entity.PaymentMethod) (*usecase.Quote, error) {
	if !method.IsValid() {
		return nil, countRejection(s.metrics, domainerrors.ErrInvalidPaymentMethod.WithDetails(string(method)))
	}

	var quote *usecase.Quote
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		if len(cur.Cart) == 0 {
			return state.Patch{}, domainerrors.ErrEmptyCart
		}

		cur.Checkout = entity.CheckoutState{Phase: entity.PhaseMethodSelected, Method: method}
		quote = newQuote(cur)

		return state.Patch{Checkout: &cur.Checkout}, nil
	})
	if err != nil {
		return nil, countRejection(s.metrics, err)
	}

	return quote, nil
}

// SetAmountReceived records the cash handed over for a cash payment
func (s *checkoutService) SetAmountReceived(ctx context.Context, amount int64) (*usecase.Quote, error) {
	if amount < 0 {
		return nil, countRejection(s.metrics, domainerrors.ErrValidationFailed.WithDetails("jumlah uang tidak boleh negatif"))
	}

	var quote *usecase.Quote
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		if cur.Checkout.Phase != entity.PhaseMethodSelected {
			return state.Patch{}, domainerrors.ErrNoPaymentMethod
		}
		if cur.Checkout.Method != entity.PaymentCash {
			return state.Patch{}, domainerrors.ErrInvalidPaymentMethod.WithDetails("uang diterima hanya untuk pembayaran tunai")
		}

		cur.Checkout.AmountReceived = amount
		quote = newQuote(cur)

		return state.Patch{Checkout: &cur.Checkout}, nil
	})
	if err != nil {
		return nil, countRejection(s.metrics, err)
	}

	return quote, nil
}

// ConfirmPayment turns the cart into an order and returns the checkout to idle.
// Publishing and metrics run after the commit and never fail the checkout.
func (s *checkoutService) ConfirmPayment(ctx context.Context) (*entity.Order, error) {
	var (
		order     entity.Order
		storeName string
	)
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		if cur.Checkout.Phase != entity.PhaseMethodSelected {
			return state.Patch{}, domainerrors.ErrNoPaymentMethod
		}
		if len(cur.Cart) == 0 {
			return state.Patch{}, domainerrors.ErrEmptyCart
		}

		totals := entity.ComputeTotals(cur.Cart.Subtotal(), cur.Settings)
		method := cur.Checkout.Method

		var received, change int64
		if method == entity.PaymentCash {
			received = cur.Checkout.AmountReceived
			if received < totals.TotalAmount {
				return state.Patch{}, domainerrors.ErrInsufficientPayment.WithDetails(
					fmt.Sprintf("kurang Rp%d", totals.TotalAmount-received))
			}
			change = received - totals.TotalAmount
		}

		now := s.now()
		storeName = cur.Settings.StoreName
		order = entity.Order{
			OrderNumber:    s.numbers.next(now, cur.Orders),
			Timestamp:      now,
			Items:          cur.Cart.Clone(),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			TotalAmount:    totals.TotalAmount,
			PaymentMethod:  method,
			AmountReceived: received,
			Change:         change,
			Cashier:        cashierLabel(ctx, cur.Settings),
		}

		orders := append(cur.Orders, order.Clone())
		s.stateRepo.SaveOrders(ctx, orders)
		idle := entity.IdleCheckout()

		return state.Patch{Orders: orders, Cart: entity.Cart{}, Checkout: &idle}, nil
	})
	if err != nil {
		return nil, countRejection(s.metrics, err)
	}

	logger := requestLogger(ctx, s.logger)
	logger.Info("Order finalized",
		slog.String("order_number", order.OrderNumber),
		slog.Int64("total", order.TotalAmount),
		slog.String("payment_method", order.PaymentMethod.String()),
	)

	s.metrics.OrderFinalized(order)

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          service.OrderEventFinalized,
		OrderNumber:   order.OrderNumber,
		Timestamp:     order.Timestamp,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod.String(),
		ItemsSold:     order.ItemsSold(),
		StoreName:     storeName,
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}

	return &order, nil
}

// CancelCheckout drops the payment selection
func (s *checkoutService) CancelCheckout(ctx context.Context) *usecase.Quote {
	var quote *usecase.Quote
	_ = s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		if cur.Checkout.Phase == entity.PhaseIdle {
			quote = newQuote(cur)

			return state.Patch{}, nil
		}

		cur.Checkout = entity.IdleCheckout()
		quote = newQuote(cur)

		return state.Patch{Checkout: &cur.Checkout}, nil
	})

	return quote
}

// cashierLabel names the signed-in cashier, falling back to the register's
// configured label.
func cashierLabel(ctx context.Context, settings entity.Settings) string {
	if claims, ok := deliverycontext.CashierFromContext(ctx); ok {
		if claims.Label != "" {
			return claims.Label
		}
		if claims.Username != "" {
			return claims.Username
		}
	}

	return settings.CashierLabel
}

func newQuote(st entity.AppState) *usecase.Quote {
	totals := entity.ComputeTotals(st.Cart.Subtotal(), st.Settings)
	quote := &usecase.Quote{
		Totals:         totals,
		Phase:          st.Checkout.Phase,
		Method:         st.Checkout.Method,
		AmountReceived: st.Checkout.AmountReceived,
		ItemCount:      st.Cart.ItemCount(),
	}
	if st.Checkout.Method == entity.PaymentCash {
		quote.Change = st.Checkout.AmountReceived - totals.TotalAmount
	}

	return quote
}
