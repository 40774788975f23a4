package usecase

import (
	"context"
	"time"

	"pos/internal/domain/report"
)

// DashboardQuery selects the window and series sizes of the dashboard.
type DashboardQuery struct {
	Window report.Window
	Days   int
	Limit  int
}

// Dashboard aggregates the sales history.
type Dashboard struct {
	Window        report.Window   `json:"window"`
	Summary       report.Summary  `json:"summary"`
	RevenueSeries []report.Point  `json:"revenueSeries"`
	TopSellers    []report.Seller `json:"topSellers"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// ReportUsecase defines the interface for dashboard metrics
type ReportUsecase interface {
	// Dashboard computes the metrics for the requested window
	Dashboard(ctx context.Context, query DashboardQuery) (*Dashboard, error)
}
