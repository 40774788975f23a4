package middleware

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into the JSON envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their own status and code; echo errors (unknown route, body too large) get
// HTTP_ERROR; anything else is logged with its stack and reported as 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		_ = response.AppError(c, appErr)

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("stack", errors.StackTrace(err)),
		)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
	}
}
