package dashboard

import (
	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/payroll"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
)

type LeaderboardEntry struct {
	Rank             int      `json:"rank"`
	SellerID         string   `json:"seller_id"`
	Username         string   `json:"username"`
	FullName         string   `json:"full_name"`
	ExperienceStatus string   `json:"experience_status"`
	TotalSolds       int64    `json:"total_solds"`
	TotalHours       float64  `json:"total_hours"`
	WorkingDays      int64    `json:"working_days"`
	TotalEarned      *float64 `json:"total_earned,omitempty"` // admin variant only
}

type AdminDashboardResponse struct {
	SellerStats    user.SellerStatsResponse `json:"seller_stats"`
	TodaySolds     int64                    `json:"today_solds"`
	YesterdaySolds int64                    `json:"yesterday_solds"`
	SoldsGrowthPct *float64                 `json:"solds_growth_pct,omitempty"`
	Leaderboard    []LeaderboardEntry       `json:"leaderboard"`
	RecentActivity []activity.LogResponse   `json:"recent_activity"`
}

type PeriodSummary struct {
	TotalSolds  int64   `json:"total_solds"`
	TotalHours  float64 `json:"total_hours"`
	WorkingDays int64   `json:"working_days"`
	Rank        *int    `json:"rank,omitempty"`
	TotalEarned float64 `json:"total_earned"`
}

type SellerDashboardResponse struct {
	Period            payroll.PeriodResponse          `json:"period"`
	Summary           PeriodSummary                   `json:"summary"`
	Leaderboard       []LeaderboardEntry              `json:"leaderboard"`
	RecentSubmissions []attendance.AttendanceResponse `json:"recent_submissions"`
}
