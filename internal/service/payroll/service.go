package payroll

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/dashboard"
	"github.com/livehost-agency/agency-backend-go/internal/domain/payroll"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
)

var timeNow = time.Now

type PayrollServiceImpl struct {
	loc *time.Location
	dashboard.DashboardRepository
}

func NewPayrollService(loc *time.Location, dashboardRepository dashboard.DashboardRepository) payroll.PayrollService {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollServiceImpl{
		loc:                 loc,
		DashboardRepository: dashboardRepository,
	}
}

// CurrentPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) CurrentPeriod(ctx context.Context) payroll.PeriodResponse {
	day := attendance.BusinessDay(timeNow().In(s.loc))
	return periodResponse(day)
}

func periodResponse(day time.Time) payroll.PeriodResponse {
	p := payroll.PeriodFor(day)
	return payroll.PeriodResponse{
		Name:           p.Name,
		StartDate:      p.Start.Format("2006-01-02"),
		EndDate:        p.End.Format("2006-01-02"),
		DaysUntilReset: p.DaysUntilReset(day),
	}
}

// MyEarnings implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyEarnings(ctx context.Context) (*payroll.EarningsResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}
	sellerID, ok := claims["user_id"].(string)
	if !ok || sellerID == "" {
		return nil, fmt.Errorf("missing user_id claim")
	}

	return s.SellerEarnings(ctx, sellerID)
}

// SellerEarnings implements payroll.PayrollService.
func (s *PayrollServiceImpl) SellerEarnings(ctx context.Context, sellerID string) (*payroll.EarningsResponse, error) {
	day := attendance.BusinessDay(timeNow().In(s.loc))
	p := payroll.PeriodFor(day)

	row, err := s.DashboardRepository.GetSellerPerformance(ctx, sellerID, dashboard.DateRange{Start: p.Start, End: p.End})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, user.ErrUserNotFound
	}

	rate := payroll.HourlyRate(user.ExperienceStatus(row.ExperienceStatus))

	return &payroll.EarningsResponse{
		Period:      periodResponse(day),
		SellerID:    sellerID,
		HoursWorked: row.TotalHours,
		HourlyRate:  rate,
		TotalEarned: math.Round(row.TotalHours*rate*100) / 100,
		WorkingDays: row.WorkingDays,
		TotalSolds:  row.TotalSolds,
	}, nil
}
