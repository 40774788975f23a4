package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockRepo "pos/internal/mocks/repository"
	mockSvc "pos/internal/mocks/service"
	"pos/internal/state"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var checkoutClock = time.Date(2025, 10, 15, 10, 30, 0, 0, wib)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   *checkoutService
	store     *state.Store
	stateRepo *mockRepo.MockStateRepository
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockSalesMetrics
}

func createTestCheckoutService(t *testing.T, cart entity.Cart, settings entity.Settings) checkoutServiceFixtures {
	store := newTestStore(t, state.Patch{
		Catalog:  testCatalog(),
		Cart:     cart,
		Orders:   entity.Orders{},
		Settings: &settings,
	})
	stateRepo := mockRepo.NewMockStateRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockSalesMetrics(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		Store:     store,
		StateRepo: stateRepo,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newTestLogger(),
	}).(*checkoutService)
	svc.now = func() time.Time { return checkoutClock }

	return checkoutServiceFixtures{
		service:   svc,
		store:     store,
		stateRepo: stateRepo,
		publisher: publisher,
		metrics:   metrics,
	}
}

func lcdCart() entity.Cart {
	return entity.Cart{entity.NewCartLine(testCatalog()[2])}
}

func (fx checkoutServiceFixtures) expectFinalized() {
	fx.stateRepo.EXPECT().
		SaveOrders(mock.Anything, mock.AnythingOfType("entity.Orders")).
		Return(true)
	fx.metrics.EXPECT().
		OrderFinalized(mock.AnythingOfType("entity.Order")).
		Return()
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
}

func TestCheckoutService_SelectPaymentMethod(t *testing.T) {
	tests := []struct {
		name       string
		cart       entity.Cart
		method     entity.PaymentMethod
		wantErr    error
		wantReason string
	}{
		{name: "cash", cart: lcdCart(), method: entity.PaymentCash},
		{name: "e-wallet", cart: lcdCart(), method: entity.PaymentEWallet},
		{
			name:       "empty cart",
			cart:       entity.Cart{},
			method:     entity.PaymentCash,
			wantErr:    domainerrors.ErrEmptyCart,
			wantReason: "EMPTY_CART",
		},
		{
			name:       "unknown method",
			cart:       lcdCart(),
			method:     "cheque",
			wantErr:    domainerrors.ErrInvalidPaymentMethod,
			wantReason: "INVALID_PAYMENT_METHOD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t, tt.cart, entity.DefaultSettings())
			if tt.wantReason != "" {
				fx.metrics.EXPECT().CartRejected(tt.wantReason).Return().Once()
			}

			quote, err := fx.service.SelectPaymentMethod(context.Background(), tt.method)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, entity.PhaseIdle, fx.store.GetState().Checkout.Phase)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.PhaseMethodSelected, quote.Phase)
			assert.Equal(t, tt.method, fx.store.GetState().Checkout.Method)
		})
	}
}

func TestCheckoutService_SetAmountReceived_OnlyForCash(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.metrics.EXPECT().CartRejected("NO_PAYMENT_METHOD").Return().Once()
	fx.metrics.EXPECT().CartRejected("INVALID_PAYMENT_METHOD").Return().Once()

	_, err := fx.service.SetAmountReceived(ctx, 100000)
	assert.ErrorIs(t, err, domainerrors.ErrNoPaymentMethod)

	_, err = fx.service.SelectPaymentMethod(ctx, entity.PaymentBankTransfer)
	require.NoError(t, err)
	_, err = fx.service.SetAmountReceived(ctx, 100000)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestCheckoutService_Quote_ChangeMayBeNegative(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentCash)
	require.NoError(t, err)
	quote, err := fx.service.SetAmountReceived(ctx, 300000)
	require.NoError(t, err)

	assert.Equal(t, int64(350000), quote.TotalAmount)
	assert.Equal(t, int64(-50000), quote.Change)
	assert.Equal(t, quote, fx.service.Quote(ctx))
}

func TestCheckoutService_ConfirmPayment_Tax(t *testing.T) {
	tests := []struct {
		name      string
		settings  entity.Settings
		cart      entity.Cart
		wantTax   int64
		wantTotal int64
	}{
		{
			name:      "tax disabled",
			settings:  entity.Settings{TaxEnabled: false, TaxRate: 11},
			cart:      lcdCart(),
			wantTax:   0,
			wantTotal: 350000,
		},
		{
			name:      "eleven percent",
			settings:  entity.Settings{TaxEnabled: true, TaxRate: 11},
			cart:      lcdCart(),
			wantTax:   38500,
			wantTotal: 388500,
		},
		{
			name:      "rounds half up",
			settings:  entity.Settings{TaxEnabled: true, TaxRate: 10},
			cart:      entity.Cart{{ItemID: 9, Name: "Sticker", Price: 5, Kind: entity.KindProduct, Quantity: 1}},
			wantTax:   1,
			wantTotal: 6,
		},
		{
			name:      "zero rate",
			settings:  entity.Settings{TaxEnabled: true, TaxRate: 0},
			cart:      lcdCart(),
			wantTax:   0,
			wantTotal: 350000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t, tt.cart, tt.settings)
			ctx := context.Background()
			fx.expectFinalized()

			_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentEWallet)
			require.NoError(t, err)

			order, err := fx.service.ConfirmPayment(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.cart.Subtotal(), order.Subtotal)
			assert.Equal(t, tt.wantTax, order.TaxAmount)
			assert.Equal(t, tt.wantTotal, order.TotalAmount)
			assert.Equal(t, order.Subtotal+order.TaxAmount, order.TotalAmount)
		})
	}
}

func TestCheckoutService_ConfirmPayment_InsufficientCash(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.metrics.EXPECT().CartRejected("INSUFFICIENT_PAYMENT").Return().Once()

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentCash)
	require.NoError(t, err)
	_, err = fx.service.SetAmountReceived(ctx, 349999)
	require.NoError(t, err)

	order, err := fx.service.ConfirmPayment(ctx)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPayment)
	st := fx.store.GetState()
	assert.Empty(t, st.Orders)
	assert.Len(t, st.Cart, 1)
	assert.Equal(t, entity.PhaseMethodSelected, st.Checkout.Phase)
}

func TestCheckoutService_ConfirmPayment_Cash(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.expectFinalized()

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentCash)
	require.NoError(t, err)
	_, err = fx.service.SetAmountReceived(ctx, 400000)
	require.NoError(t, err)

	order, err := fx.service.ConfirmPayment(ctx)
	require.NoError(t, err)

	assert.Equal(t, "ORD-1760499000000", order.OrderNumber)
	assert.Equal(t, checkoutClock, order.Timestamp)
	assert.Equal(t, int64(400000), order.AmountReceived)
	assert.Equal(t, int64(50000), order.Change)
	assert.Equal(t, "Kasir 1", order.Cashier)

	st := fx.store.GetState()
	require.Len(t, st.Orders, 1)
	assert.Equal(t, *order, st.Orders[0])
	assert.Empty(t, st.Cart)
	assert.Equal(t, entity.IdleCheckout(), st.Checkout)
}

func TestCheckoutService_ConfirmPayment_Cashier(t *testing.T) {
	tests := []struct {
		name   string
		claims *entity.CashierClaims
		want   string
	}{
		{name: "no signed-in cashier uses settings label", want: "Kasir 1"},
		{name: "signed-in cashier label", claims: &entity.CashierClaims{Username: "rina", Label: "Rina"}, want: "Rina"},
		{name: "signed-in cashier without label", claims: &entity.CashierClaims{Username: "budi"}, want: "budi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
			ctx := context.Background()
			if tt.claims != nil {
				ctx = deliverycontext.WithCashier(ctx, tt.claims)
			}
			fx.expectFinalized()

			_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentBankTransfer)
			require.NoError(t, err)

			order, err := fx.service.ConfirmPayment(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.want, order.Cashier)
			assert.Equal(t, tt.want, fx.store.GetState().Orders[0].Cashier)
		})
	}
}

func TestCheckoutService_ConfirmPayment_OrderIsDetachedFromCart(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.expectFinalized()

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentEWallet)
	require.NoError(t, err)
	order, err := fx.service.ConfirmPayment(ctx)
	require.NoError(t, err)

	order.Items[0].Quantity = 99

	assert.Equal(t, 1, fx.store.GetState().Orders[0].Items[0].Quantity)
}

func TestCheckoutService_ConfirmPayment_PublishesEvent(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.stateRepo.EXPECT().SaveOrders(mock.Anything, mock.Anything).Return(true)
	fx.metrics.EXPECT().OrderFinalized(mock.Anything).Return()

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(errors.New("broker unavailable"))

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentBankTransfer)
	require.NoError(t, err)

	order, err := fx.service.ConfirmPayment(ctx)
	require.NoError(t, err, "publisher failures must not fail the checkout")

	require.NotNil(t, published)
	assert.Equal(t, service.OrderEventFinalized, published.Type)
	assert.Equal(t, order.OrderNumber, published.OrderNumber)
	assert.Equal(t, 1, published.ItemsSold)
	assert.Equal(t, "Toko Servis", published.StoreName)
}

func TestCheckoutService_ConfirmPayment_RequiresMethod(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	fx.metrics.EXPECT().CartRejected("NO_PAYMENT_METHOD").Return().Once()

	_, err := fx.service.ConfirmPayment(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNoPaymentMethod)
}

func TestCheckoutService_OrderNumbersAreUnique(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()
	fx.expectFinalized()
	fx.stateRepo.EXPECT().SaveCatalog(mock.Anything, mock.Anything).Return(true)

	cart := NewCartService(CartServiceParams{
		Store:     fx.store,
		StateRepo: fx.stateRepo,
		Metrics:   fx.metrics,
		Logger:    newTestLogger(),
	})

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		if i > 0 {
			_, err := cart.AddToCart(ctx, lcdID)
			require.NoError(t, err)
		}
		_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentEWallet)
		require.NoError(t, err)

		order, err := fx.service.ConfirmPayment(ctx)
		require.NoError(t, err)
		assert.False(t, seen[order.OrderNumber], "duplicate %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}

	assert.Len(t, fx.store.GetState().Orders, 3)
}

func TestOrderNumbers_SkipsExistingNumbers(t *testing.T) {
	numbers := &orderNumbers{}
	existing := entity.Orders{
		{OrderNumber: "ORD-1000"},
		{OrderNumber: "ORD-1001"},
	}

	assert.Equal(t, "ORD-1002", numbers.next(time.UnixMilli(1000), existing))
	assert.Equal(t, "ORD-1003", numbers.next(time.UnixMilli(900), existing))
	assert.Equal(t, "ORD-5000", numbers.next(time.UnixMilli(5000), existing))
}

func TestCheckoutService_CancelCheckout(t *testing.T) {
	fx := createTestCheckoutService(t, lcdCart(), entity.DefaultSettings())
	ctx := context.Background()

	_, err := fx.service.SelectPaymentMethod(ctx, entity.PaymentCash)
	require.NoError(t, err)

	quote := fx.service.CancelCheckout(ctx)

	assert.Equal(t, entity.PhaseIdle, quote.Phase)
	assert.Equal(t, entity.IdleCheckout(), fx.store.GetState().Checkout)
	assert.Len(t, fx.store.GetState().Cart, 1)
}
