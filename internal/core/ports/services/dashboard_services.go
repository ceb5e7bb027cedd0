package services

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/dto"
)

// DashboardSvc assembles the dashboard view model: summary figures, budget
// actuals and display-currency renderings of the headline totals.
type DashboardSvc interface {
	// GetDashboard fetches the user's collections concurrently, then runs the
	// aggregation pass and converts headline figures into displayCurrency.
	GetDashboard(ctx context.Context, userID string, from, to time.Time, displayCurrency string) (*dto.DashboardResponse, error)
}
