package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/dashboard"
	"github.com/livehost-agency/agency-backend-go/internal/domain/payroll"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/service/file"
)

var timeNow = time.Now

const (
	leaderboardWindowDays = 30
	recentActivityLimit   = 10
	recentSubmissionLimit = 5
)

type DashboardServiceImpl struct {
	loc *time.Location
	dashboard.DashboardRepository
	user.UserRepository
	attendance.AttendanceRepository
	activity.ActivityRepository
	file.FileService
}

func NewDashboardService(loc *time.Location, dashboardRepository dashboard.DashboardRepository, userRepository user.UserRepository, attendanceRepository attendance.AttendanceRepository, activityRepository activity.ActivityRepository, fileService file.FileService) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardServiceImpl{
		loc:                  loc,
		DashboardRepository:  dashboardRepository,
		UserRepository:       userRepository,
		AttendanceRepository: attendanceRepository,
		ActivityRepository:   activityRepository,
		FileService:          fileService,
	}
}

// rankRows orders aggregate rows into a leaderboard: solds desc, ties by
// hours desc, then working days desc. Ranks are the 1-based positions of
// the sorted order, so they are always gapless.
func rankRows(rows []dashboard.SellerPerformanceRow, withEarnings bool) []dashboard.LeaderboardEntry {
	sorted := make([]dashboard.SellerPerformanceRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalSolds != sorted[j].TotalSolds {
			return sorted[i].TotalSolds > sorted[j].TotalSolds
		}
		if sorted[i].TotalHours != sorted[j].TotalHours {
			return sorted[i].TotalHours > sorted[j].TotalHours
		}
		return sorted[i].WorkingDays > sorted[j].WorkingDays
	})

	entries := make([]dashboard.LeaderboardEntry, 0, len(sorted))
	for i, row := range sorted {
		entry := dashboard.LeaderboardEntry{
			Rank:             i + 1,
			SellerID:         row.SellerID,
			Username:         row.Username,
			FullName:         row.FullName,
			ExperienceStatus: row.ExperienceStatus,
			TotalSolds:       row.TotalSolds,
			TotalHours:       row.TotalHours,
			WorkingDays:      row.WorkingDays,
		}
		if withEarnings {
			rate := payroll.HourlyRate(user.ExperienceStatus(row.ExperienceStatus))
			earned := math.Round(row.TotalHours*rate*100) / 100
			entry.TotalEarned = &earned
		}
		entries = append(entries, entry)
	}

	return entries
}

// AdminDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	today := attendance.BusinessDay(timeNow().In(s.loc))
	yesterday := today.AddDate(0, 0, -1)

	stats, err := s.UserRepository.GetSellerStats(ctx)
	if err != nil {
		return nil, err
	}

	todaySolds, err := s.DashboardRepository.GetSoldsForDate(ctx, today)
	if err != nil {
		return nil, err
	}
	yesterdaySolds, err := s.DashboardRepository.GetSoldsForDate(ctx, yesterday)
	if err != nil {
		return nil, err
	}

	var growth *float64
	if yesterdaySolds > 0 {
		pct := math.Round(float64(todaySolds-yesterdaySolds)/float64(yesterdaySolds)*10000) / 100
		growth = &pct
	}

	rows, err := s.DashboardRepository.GetPerformanceRows(ctx, dashboard.DateRange{
		Start: today.AddDate(0, 0, -(leaderboardWindowDays - 1)),
		End:   today,
	})
	if err != nil {
		return nil, err
	}

	logs, err := s.ActivityRepository.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]activity.LogResponse, 0, len(logs))
	for _, l := range logs {
		recent = append(recent, activity.LogResponse{
			ID:        l.ID,
			Action:    l.Action,
			Details:   l.Details,
			Username:  l.Username,
			FullName:  l.FullName,
			IPAddress: l.IPAddress,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dashboard.AdminDashboardResponse{
		SellerStats: user.SellerStatsResponse{
			Total:    stats.Total,
			Active:   stats.Active,
			Inactive: stats.Inactive,
			Newbie:   stats.Newbie,
			Tenured:  stats.Tenured,
		},
		TodaySolds:     todaySolds,
		YesterdaySolds: yesterdaySolds,
		SoldsGrowthPct: growth,
		Leaderboard:    rankRows(rows, true),
		RecentActivity: recent,
	}, nil
}

// SellerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) SellerDashboard(ctx context.Context) (*dashboard.SellerDashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}
	sellerID, ok := claims["user_id"].(string)
	if !ok || sellerID == "" {
		return nil, fmt.Errorf("missing user_id claim")
	}

	day := attendance.BusinessDay(timeNow().In(s.loc))
	p := payroll.PeriodFor(day)

	rows, err := s.DashboardRepository.GetPerformanceRows(ctx, dashboard.DateRange{Start: p.Start, End: p.End})
	if err != nil {
		return nil, err
	}
	leaderboard := rankRows(rows, false)

	var summary dashboard.PeriodSummary
	for _, entry := range leaderboard {
		if entry.SellerID == sellerID {
			rank := entry.Rank
			rate := payroll.HourlyRate(user.ExperienceStatus(entry.ExperienceStatus))
			summary = dashboard.PeriodSummary{
				TotalSolds:  entry.TotalSolds,
				TotalHours:  entry.TotalHours,
				WorkingDays: entry.WorkingDays,
				Rank:        &rank,
				TotalEarned: math.Round(entry.TotalHours*rate*100) / 100,
			}
			break
		}
	}

	records, _, err := s.AttendanceRepository.ListBySeller(ctx, sellerID, attendance.ListFilter{Page: 1, Limit: recentSubmissionLimit})
	if err != nil {
		return nil, err
	}
	recent := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		resp := attendance.AttendanceResponse{
			ID:             a.ID,
			SellerID:       a.SellerID,
			AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
			Status:         a.Status,
			SoldsQuantity:  a.SoldsQuantity,
			HoursWorked:    a.HoursWorked,
			StartTime:      a.SlotStartTime,
			EndTime:        a.SlotEndTime,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		}
		if a.PhotoPath != nil {
			if url, err := s.FileService.GetFileURL(ctx, *a.PhotoPath, 24*time.Hour); err == nil {
				resp.PhotoURL = &url
			}
		}
		recent = append(recent, resp)
	}

	return &dashboard.SellerDashboardResponse{
		Period: payroll.PeriodResponse{
			Name:           p.Name,
			StartDate:      p.Start.Format("2006-01-02"),
			EndDate:        p.End.Format("2006-01-02"),
			DaysUntilReset: p.DaysUntilReset(day),
		},
		Summary:           summary,
		Leaderboard:       leaderboard,
		RecentSubmissions: recent,
	}, nil
}
