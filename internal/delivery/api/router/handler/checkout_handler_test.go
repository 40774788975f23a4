package handler

import (
	"net/http"
	"testing"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutTestEcho(f handlerFixtures) *echo.Echo {
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: f.checkoutUC})
	e := newTestEcho()
	e.GET("/checkout", h.Quote)
	e.POST("/checkout/method", h.SelectMethod)
	e.POST("/checkout/received", h.SetAmountReceived)
	e.POST("/checkout/confirm", h.Confirm)
	e.POST("/checkout/cancel", h.Cancel)

	return e
}

func TestCheckoutHandler_SelectMethod(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f handlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "cash",
			body: `{"method":"cash"}`,
			setup: func(f handlerFixtures) {
				f.checkoutUC.EXPECT().SelectPaymentMethod(mock.Anything, entity.PaymentCash).
					Return(&usecase.Quote{Phase: entity.PhaseMethodSelected, Method: entity.PaymentCash}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty cart",
			body: `{"method":"ewallet"}`,
			setup: func(f handlerFixtures) {
				f.checkoutUC.EXPECT().SelectPaymentMethod(mock.Anything, entity.PaymentEWallet).
					Return(nil, domainerrors.ErrEmptyCart)
			},
			wantStatus: domainerrors.ErrEmptyCart.HTTPCode(),
			wantCode:   "EMPTY_CART",
		},
		{
			name:       "missing method",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixtures(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := doRequest(newCheckoutTestEcho(f), http.MethodPost, "/checkout/method", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
			}
		})
	}
}

func TestCheckoutHandler_SetAmountReceived(t *testing.T) {
	f := newHandlerFixtures(t)
	f.checkoutUC.EXPECT().SetAmountReceived(mock.Anything, int64(100000)).
		Return(&usecase.Quote{Totals: entity.Totals{TotalAmount: 94500}, AmountReceived: 100000, Change: 5500}, nil)

	rec := doRequest(newCheckoutTestEcho(f), http.MethodPost, "/checkout/received", `{"amount":100000}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	quote := decodeData[usecase.Quote](t, rec)
	assert.Equal(t, int64(5500), quote.Change)
	assert.Equal(t, int64(94500), quote.TotalAmount)
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	t.Run("creates order", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.checkoutUC.EXPECT().ConfirmPayment(mock.Anything).Return(&entity.Order{
			OrderNumber:   "ORD-1760499000000",
			Timestamp:     time.Date(2025, 10, 15, 3, 30, 0, 0, time.UTC),
			TotalAmount:   55500,
			PaymentMethod: entity.PaymentCash,
		}, nil)

		rec := doRequest(newCheckoutTestEcho(f), http.MethodPost, "/checkout/confirm", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		order := decodeData[entity.Order](t, rec)
		assert.Equal(t, "ORD-1760499000000", order.OrderNumber)
		assert.Equal(t, int64(55500), order.TotalAmount)
	})

	t.Run("insufficient payment", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.checkoutUC.EXPECT().ConfirmPayment(mock.Anything).
			Return(nil, domainerrors.ErrInsufficientPayment.WithDetails("kurang Rp5500"))

		rec := doRequest(newCheckoutTestEcho(f), http.MethodPost, "/checkout/confirm", "")

		env := decodeEnvelope(t, rec)
		assert.Equal(t, domainerrors.ErrInsufficientPayment.HTTPCode(), rec.Code)
		assert.Equal(t, "INSUFFICIENT_PAYMENT", env.Error.Code)
		assert.Equal(t, "kurang Rp5500", env.Error.Details)
	})
}

func TestCheckoutHandler_QuoteAndCancel(t *testing.T) {
	f := newHandlerFixtures(t)
	f.checkoutUC.EXPECT().Quote(mock.Anything).Return(&usecase.Quote{Phase: entity.PhaseMethodSelected, ItemCount: 2})
	f.checkoutUC.EXPECT().CancelCheckout(mock.Anything).Return(&usecase.Quote{Phase: entity.PhaseIdle, ItemCount: 2})

	e := newCheckoutTestEcho(f)

	rec := doRequest(e, http.MethodGet, "/checkout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.PhaseMethodSelected, decodeData[usecase.Quote](t, rec).Phase)

	rec = doRequest(e, http.MethodPost, "/checkout/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.PhaseIdle, decodeData[usecase.Quote](t, rec).Phase)
}
