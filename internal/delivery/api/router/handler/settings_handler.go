package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler reads and replaces the shop settings
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.settingsUC.GetSettings(c.Request().Context()))
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var input usecase.SettingsInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
