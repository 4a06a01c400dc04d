package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// GetPerformanceRows aggregates all active live sellers over the range.
	GetPerformanceRows(ctx context.Context, rng DateRange) ([]SellerPerformanceRow, error)
	// GetSellerPerformance aggregates one seller; nil row means no activity.
	GetSellerPerformance(ctx context.Context, sellerID string, rng DateRange) (*SellerPerformanceRow, error)
	// GetSoldsForDate sums solds across non-cancelled records on one business date.
	GetSoldsForDate(ctx context.Context, date time.Time) (int64, error)
}
