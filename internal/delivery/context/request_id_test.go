package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCashier_ReachesRequestContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", nil), httptest.NewRecorder())
	claims := &entity.CashierClaims{Username: "rina", Label: "Rina"}

	SetCashier(c, claims)

	fromEcho, ok := GetCashier(c)
	require.True(t, ok)
	assert.Equal(t, claims, fromEcho)

	fromCtx, ok := CashierFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, claims, fromCtx)
}

func TestCashierFromContext_Missing(t *testing.T) {
	_, ok := CashierFromContext(context.Background())
	assert.False(t, ok)
}
