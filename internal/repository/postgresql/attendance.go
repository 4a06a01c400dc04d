package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.seller_id, a.time_slot_id, a.attendance_date, a.status,
		   a.solds_quantity, a.hours_worked, a.photo_path, a.check_in_at, a.check_out_at,
		   a.notes, a.created_at, a.updated_at,
		   u.full_name, u.username, u.experience_status,
		   s.name, s.start_time, s.end_time
	FROM seller_attendance a
	JOIN users u ON u.id = a.seller_id
	LEFT JOIN attendance_time_slots s ON s.id = a.time_slot_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.SellerID,
		&a.TimeSlotID,
		&a.AttendanceDate,
		&a.Status,
		&a.SoldsQuantity,
		&a.HoursWorked,
		&a.PhotoPath,
		&a.CheckInAt,
		&a.CheckOutAt,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.SellerName,
		&a.SellerUsername,
		&a.ExperienceStatus,
		&a.SlotName,
		&a.SlotStartTime,
		&a.SlotEndTime,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
//
// The partial unique index over non-cancelled (seller_id, attendance_date)
// rows is the duplicate gate: a violation means the day is already taken,
// however the race played out.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO seller_attendance (
			seller_id, time_slot_id, attendance_date, status, solds_quantity,
			hours_worked, photo_path, check_in_at, check_out_at, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.SellerID,
		att.TimeSlotID,
		att.AttendanceDate,
		att.Status,
		att.SoldsQuantity,
		att.HoursWorked,
		att.PhotoPath,
		att.CheckInAt,
		att.CheckOutAt,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrAlreadySubmitted
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &a, nil
}

// HasActiveForDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasActiveForDay(ctx context.Context, sellerID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM seller_attendance
			WHERE seller_id = $1 AND attendance_date = $2 AND status <> 'cancelled'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, sellerID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance for day: %w", err)
	}

	return exists, nil
}

// ExistsForSlot implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsForSlot(ctx context.Context, sellerID string, date time.Time, timeSlotID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM seller_attendance
			WHERE seller_id = $1 AND attendance_date = $2 AND time_slot_id = $3
			  AND status <> 'cancelled'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, sellerID, date, timeSlotID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}

	return exists, nil
}

// UpdateCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateCheckIn(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE seller_attendance
		SET status = 'checked_in', check_in_at = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'scheduled'
	`

	tag, err := q.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to check in attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotCheckInable
	}

	return nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateCheckOut(ctx context.Context, id string, at time.Time, hoursWorked *float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE seller_attendance
		SET status = 'completed', check_out_at = $1, hours_worked = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'checked_in'
	`

	tag, err := q.Exec(ctx, query, at, hoursWorked, id)
	if err != nil {
		return fmt.Errorf("failed to check out attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotCheckOutable
	}

	return nil
}

// Cancel implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE seller_attendance
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'scheduled'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to cancel attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotCancellable
	}

	return nil
}

// CancelStaleScheduled implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CancelStaleScheduled(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE seller_attendance
		SET status = 'cancelled', updated_at = NOW()
		WHERE status = 'scheduled' AND attendance_date < $1
	`

	tag, err := q.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale scheduled attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListBySeller implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBySeller(ctx context.Context, sellerID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.seller_id = $1"}
	args := []interface{}{sellerID}
	argPos := 2

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("to_char(a.attendance_date, 'YYYY-MM') = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM seller_attendance a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := attendanceSelect + ` WHERE ` + where +
		fmt.Sprintf(" ORDER BY a.attendance_date DESC, a.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	records, err := r.queryList(ctx, q, query, args)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListForReview implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListForReview(ctx context.Context, filter attendance.ReviewFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argPos := reviewConditions(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM seller_attendance a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count review records: %w", err)
	}

	query := attendanceSelect + ` WHERE ` + where +
		fmt.Sprintf(" ORDER BY a.attendance_date DESC, a.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	records, err := r.queryList(ctx, q, query, args)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetReviewStats implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetReviewStats(ctx context.Context, filter attendance.ReviewFilter) (*attendance.ReviewStats, error) {
	q := GetQuerier(ctx, r.db)

	where, args, _ := reviewConditions(filter)

	query := `
		SELECT COUNT(DISTINCT a.seller_id), COUNT(*), COALESCE(SUM(a.solds_quantity), 0),
			   to_char(MIN(a.attendance_date), 'YYYY-MM-DD'), to_char(MAX(a.attendance_date), 'YYYY-MM-DD')
		FROM seller_attendance a
		WHERE ` + where

	var stats attendance.ReviewStats
	err := q.QueryRow(ctx, query, args...).Scan(
		&stats.SellerCount,
		&stats.SubmissionCount,
		&stats.TotalSolds,
		&stats.EarliestDate,
		&stats.LatestDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get review stats: %w", err)
	}

	return &stats, nil
}

// ListPhotoPathsBySeller implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListPhotoPathsBySeller(ctx context.Context, sellerID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT photo_path FROM seller_attendance
		WHERE seller_id = $1 AND photo_path IS NOT NULL
	`

	rows, err := q.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photo paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan photo path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read photo paths: %w", err)
	}

	return paths, nil
}

// reviewConditions builds the WHERE clause shared by the review listing and
// its stats query. Only records carrying work count: checked-in or completed.
func reviewConditions(filter attendance.ReviewFilter) (string, []interface{}, int) {
	conditions := []string{"a.status IN ('checked_in', 'completed')"}
	args := []interface{}{}
	argPos := 1

	if filter.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("a.seller_id = $%d", argPos))
		args = append(args, *filter.SellerID)
		argPos++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.attendance_date = $%d", argPos))
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("to_char(a.attendance_date, 'YYYY-MM') = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}

	return strings.Join(conditions, " AND "), args, argPos
}

func (r *attendanceRepositoryImpl) queryList(ctx context.Context, q database.Querier, query string, args []interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}

	return records, nil
}
