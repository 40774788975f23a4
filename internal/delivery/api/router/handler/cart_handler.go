package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the cart endpoints
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddItemRequest is the body of POST /cart/items
type AddItemRequest struct {
	ItemID int64 `json:"itemId" validate:"required"`
}

// AdjustRequest is the body of PATCH /cart/items/:id
type AdjustRequest struct {
	Delta int `json:"delta"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.GetCart(c.Request().Context()))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.AddToCart(c.Request().Context(), req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AdjustQuantity handles PATCH /cart/items/:id
func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AdjustRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.AdjustQuantity(c.Request().Context(), id, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart handles DELETE /cart?confirm=true
func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.cartUC.ClearCart(ctx, confirmerFromRequest(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.GetCart(ctx))
}
