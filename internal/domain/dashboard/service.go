package dashboard

import "context"

type DashboardService interface {
	// AdminDashboard: seller totals, today vs yesterday solds, the 30-day
	// leaderboard with earnings, and recent audit entries.
	AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)

	// SellerDashboard: the caller's current pay period, their aggregate and
	// rank within it, the period leaderboard, and recent submissions.
	SellerDashboard(ctx context.Context) (*SellerDashboardResponse, error)
}
