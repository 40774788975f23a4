// Package context carries request-scoped values between the echo layer and
// the usecases: the request ID, the request logger and the signed-in cashier.
package context

import (
	"context"
	"log/slog"

	"pos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyCashier is the key for the authenticated cashier claims.
	KeyCashier ContextKey = "cashier"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCashier stores the authenticated cashier on the echo context and on the
// request context, where the usecases read it.
func SetCashier(c echo.Context, claims *entity.CashierClaims) {
	c.Set(string(KeyCashier), claims)
	c.SetRequest(c.Request().WithContext(WithCashier(c.Request().Context(), claims)))
}

// WithCashier returns a new context carrying the cashier claims.
func WithCashier(ctx context.Context, claims *entity.CashierClaims) context.Context {
	return context.WithValue(ctx, KeyCashier, claims)
}

// CashierFromContext returns the signed-in cashier, or false outside an
// authenticated request.
func CashierFromContext(ctx context.Context) (*entity.CashierClaims, bool) {
	claims, ok := ctx.Value(KeyCashier).(*entity.CashierClaims)

	return claims, ok && claims != nil
}

// GetCashier returns the authenticated cashier, if any.
func GetCashier(c echo.Context) (*entity.CashierClaims, bool) {
	claims, ok := c.Get(string(KeyCashier)).(*entity.CashierClaims)

	return claims, ok && claims != nil
}
