// Package handler contains the echo handlers of the register API.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"pos/internal/delivery/api/response"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// confirmerFromRequest answers confirmation prompts with the ?confirm= flag.
// Without the flag the action is declined and the prompt is returned to the client.
func confirmerFromRequest(c echo.Context) service.Confirmer {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))

	return service.StaticConfirmer(ok)
}

func int64Param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s harus berupa angka", name))
	}

	return id, nil
}

// optionalIntQuery returns nil when the parameter is absent.
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s harus berupa angka", name))
	}

	return &n, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body JSON tidak valid")
	}

	return c.Validate(req)
}
