package impl

import (
	"context"
	"fmt"
	"time"

	"pos/config"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/report"
	"pos/internal/state"
	"pos/internal/usecase"
)

const maxSeriesDays = 90

type reportService struct {
	store    *state.Store
	location *time.Location
	now      func() time.Time
}

// NewReportService creates a report service that buckets orders in the configured timezone
func NewReportService(store *state.Store, cfg *config.Config) usecase.ReportUsecase {
	return &reportService{
		store:    store,
		location: cfg.Location(),
		now:      time.Now,
	}
}

// Dashboard computes summary, revenue series and top sellers
func (s *reportService) Dashboard(ctx context.Context, query usecase.DashboardQuery) (*usecase.Dashboard, error) {
	window := query.Window
	if window == "" {
		window = report.WindowToday
	}
	if !window.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("window %q", query.Window))
	}
	if query.Days < 0 || query.Days > maxSeriesDays {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("days harus 0..%d", maxSeriesDays))
	}
	if query.Limit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit tidak boleh negatif")
	}

	orders := s.store.GetState().Orders
	ref := s.now().In(s.location)

	return &usecase.Dashboard{
		Window:        window,
		Summary:       report.Summarize(report.BucketOrders(orders, window, ref)),
		RevenueSeries: report.RevenueSeries(orders, query.Days, ref),
		TopSellers:    report.TopSellers(orders, query.Limit),
		GeneratedAt:   ref,
	}, nil
}
