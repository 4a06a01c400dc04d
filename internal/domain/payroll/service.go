package payroll

import "context"

type PayrollService interface {
	// CurrentPeriod reports the pay window containing today's business day.
	CurrentPeriod(ctx context.Context) PeriodResponse

	// MyEarnings totals the calling seller's hours for the current period
	// and prices them at their experience rate.
	MyEarnings(ctx context.Context) (*EarningsResponse, error)

	// SellerEarnings is the admin view of any seller's period earnings.
	SellerEarnings(ctx context.Context, sellerID string) (*EarningsResponse, error)
}
