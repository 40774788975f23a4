// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/errors"
)

// requestLogger returns a request-scoped logger if available, otherwise falls back to the service's logger.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// countRejection records validation failures of cart and checkout operations.
func countRejection(metrics service.SalesMetrics, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Category() == domainerrors.CategoryValidation {
		metrics.CartRejected(appErr.ErrorCode())
	}

	return err
}

// confirm asks the confirmer and maps a refusal to ErrConfirmationRequired.
func confirm(ctx context.Context, confirmer service.Confirmer, prompt string) error {
	if confirmer == nil || !confirmer.Confirm(ctx, prompt) {
		return domainerrors.ErrConfirmationRequired.WithDetails(prompt)
	}

	return nil
}
