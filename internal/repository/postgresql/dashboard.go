package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/dashboard"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

const performanceQuery = `
	SELECT u.id, u.username, u.full_name, u.experience_status,
		   COALESCE(SUM(a.solds_quantity), 0),
		   COALESCE(SUM(a.hours_worked), 0),
		   COUNT(DISTINCT a.attendance_date)
	FROM users u
	LEFT JOIN seller_attendance a
		ON a.seller_id = u.id
		AND a.status <> 'cancelled'
		AND a.attendance_date BETWEEN $1 AND $2
	WHERE u.role = 'live_seller' AND u.status = 'active'
	GROUP BY u.id, u.username, u.full_name, u.experience_status
`

// GetPerformanceRows implements dashboard.DashboardRepository. Ordering is
// left to the caller; the ranking rules live in the service layer.
func (r *dashboardRepositoryImpl) GetPerformanceRows(ctx context.Context, rng dashboard.DateRange) ([]dashboard.SellerPerformanceRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, performanceQuery, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance rows: %w", err)
	}
	defer rows.Close()

	var result []dashboard.SellerPerformanceRow
	for rows.Next() {
		var row dashboard.SellerPerformanceRow
		if err := rows.Scan(
			&row.SellerID,
			&row.Username,
			&row.FullName,
			&row.ExperienceStatus,
			&row.TotalSolds,
			&row.TotalHours,
			&row.WorkingDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read performance rows: %w", err)
	}

	return result, nil
}

// GetSellerPerformance implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetSellerPerformance(ctx context.Context, sellerID string, rng dashboard.DateRange) (*dashboard.SellerPerformanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.full_name, u.experience_status,
			   COALESCE(SUM(a.solds_quantity), 0),
			   COALESCE(SUM(a.hours_worked), 0),
			   COUNT(DISTINCT a.attendance_date)
		FROM users u
		LEFT JOIN seller_attendance a
			ON a.seller_id = u.id
			AND a.status <> 'cancelled'
			AND a.attendance_date BETWEEN $2 AND $3
		WHERE u.id = $1
		GROUP BY u.id, u.username, u.full_name, u.experience_status
	`

	var row dashboard.SellerPerformanceRow
	err := q.QueryRow(ctx, query, sellerID, rng.Start, rng.End).Scan(
		&row.SellerID,
		&row.Username,
		&row.FullName,
		&row.ExperienceStatus,
		&row.TotalSolds,
		&row.TotalHours,
		&row.WorkingDays,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seller performance: %w", err)
	}

	return &row, nil
}

// GetSoldsForDate implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetSoldsForDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(solds_quantity), 0)
		FROM seller_attendance
		WHERE attendance_date = $1 AND status <> 'cancelled'
	`

	var total int64
	if err := q.QueryRow(ctx, query, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum solds for date: %w", err)
	}

	return total, nil
}
