package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the sales history
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// ListOrders handles GET /orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.orderUC.ListOrders(c.Request().Context()))
}

// GetOrder handles GET /orders/:orderNumber
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:orderNumber?confirm=true
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	orderNumber := c.Param("orderNumber")
	if err := h.orderUC.DeleteOrder(c.Request().Context(), orderNumber, confirmerFromRequest(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"deleted": orderNumber})
}

// ReceiptQR handles GET /orders/:orderNumber/qr and returns a PNG
func (h *OrderHandler) ReceiptQR(c echo.Context) error {
	png, err := h.orderUC.ReceiptQR(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
