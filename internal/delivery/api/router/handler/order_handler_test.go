package handler

import (
	"net/http"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderTestEcho(f handlerFixtures) *echo.Echo {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: f.orderUC})
	e := newTestEcho()
	e.GET("/orders", h.ListOrders)
	e.GET("/orders/:orderNumber", h.GetOrder)
	e.DELETE("/orders/:orderNumber", h.DeleteOrder)
	e.GET("/orders/:orderNumber/qr", h.ReceiptQR)

	return e
}

func TestOrderHandler_ListAndGet(t *testing.T) {
	f := newHandlerFixtures(t)
	orders := entity.Orders{
		{OrderNumber: "ORD-2", TotalAmount: 20000},
		{OrderNumber: "ORD-1", TotalAmount: 10000},
	}
	f.orderUC.EXPECT().ListOrders(mock.Anything).Return(orders)
	f.orderUC.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(&orders[1], nil)
	f.orderUC.EXPECT().GetOrder(mock.Anything, "ORD-9").Return(nil, domainerrors.ErrOrderNotFound.WithDetails("ORD-9"))

	e := newOrderTestEcho(f)

	rec := doRequest(e, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[entity.Orders](t, rec)
	assert.Equal(t, "ORD-2", list[0].OrderNumber)

	rec = doRequest(e, http.MethodGet, "/orders/ORD-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10000), decodeData[entity.Order](t, rec).TotalAmount)

	rec = doRequest(e, http.MethodGet, "/orders/ORD-9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orderUC.EXPECT().DeleteOrder(mock.Anything, "ORD-1", mock.Anything).Return(nil)

		rec := doRequest(newOrderTestEcho(f), http.MethodDelete, "/orders/ORD-1?confirm=1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]string{"deleted": "ORD-1"}, decodeData[map[string]string](t, rec))
	})

	t.Run("declined", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orderUC.EXPECT().DeleteOrder(mock.Anything, "ORD-1", mock.Anything).Return(domainerrors.ErrConfirmationRequired)

		rec := doRequest(newOrderTestEcho(f), http.MethodDelete, "/orders/ORD-1", "")

		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	})
}

func TestOrderHandler_ReceiptQR(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	f := newHandlerFixtures(t)
	f.orderUC.EXPECT().ReceiptQR(mock.Anything, "ORD-1").Return(png, nil)
	f.orderUC.EXPECT().ReceiptQR(mock.Anything, "ORD-9").Return(nil, domainerrors.ErrOrderNotFound)

	e := newOrderTestEcho(f)

	rec := doRequest(e, http.MethodGet, "/orders/ORD-1/qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = doRequest(e, http.MethodGet, "/orders/ORD-9/qr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
