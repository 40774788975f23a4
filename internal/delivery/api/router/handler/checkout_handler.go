package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler drives the payment flow
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: params.CheckoutUC}
}

// SelectMethodRequest is the body of POST /checkout/method
type SelectMethodRequest struct {
	Method entity.PaymentMethod `json:"method" validate:"required"`
}

// AmountReceivedRequest is the body of POST /checkout/received
type AmountReceivedRequest struct {
	Amount int64 `json:"amount"`
}

// Quote handles GET /checkout
func (h *CheckoutHandler) Quote(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.checkoutUC.Quote(c.Request().Context()))
}

// SelectMethod handles POST /checkout/method
func (h *CheckoutHandler) SelectMethod(c echo.Context) error {
	var req SelectMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.checkoutUC.SelectPaymentMethod(c.Request().Context(), req.Method)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// SetAmountReceived handles POST /checkout/received
func (h *CheckoutHandler) SetAmountReceived(c echo.Context) error {
	var req AmountReceivedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.checkoutUC.SetAmountReceived(c.Request().Context(), req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// Confirm handles POST /checkout/confirm and returns the new order
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	order, err := h.checkoutUC.ConfirmPayment(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Cancel handles POST /checkout/cancel
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.checkoutUC.CancelCheckout(c.Request().Context()))
}
