// Package middleware holds the echo middleware specific to the JSON API.
package middleware

import (
	"strings"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware checks cashier bearer tokens when auth.enabled is set.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	enabled   bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: sessionUC,
		enabled:   cfg.Auth != nil && cfg.Auth.Enabled,
	}
}

// Enabled reports whether requests must carry a token.
func (m *AuthMiddleware) Enabled() bool {
	return m.enabled
}

// Authenticate validates the access token from the Authorization header, or
// from the access_token query parameter for websocket upgrades.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetCashier(c, claims)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		token := c.QueryParam("access_token")

		return token, token != ""
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
