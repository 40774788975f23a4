package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/report"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves the dashboard
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

// Dashboard handles GET /dashboard?window=&days=&limit=
func (h *ReportHandler) Dashboard(c echo.Context) error {
	query := usecase.DashboardQuery{Window: report.Window(c.QueryParam("window"))}

	days, err := optionalIntQuery(c, "days")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if days != nil {
		query.Days = *days
	}

	limit, err := optionalIntQuery(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if limit != nil {
		query.Limit = *limit
	}

	dashboard, err := h.reportUC.Dashboard(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}
