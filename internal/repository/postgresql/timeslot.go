package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/schedule"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
)

type timeSlotRepositoryImpl struct {
	db *database.DB
}

func NewTimeSlotRepository(db *database.DB) schedule.TimeSlotRepository {
	return &timeSlotRepositoryImpl{db: db}
}

// GetOrCreate implements schedule.TimeSlotRepository.
//
// The upsert keys on (start_time, end_time, duration_hours) so two sellers
// submitting the same window at the same moment land on a single row. The
// no-op DO UPDATE makes RETURNING yield the existing row on conflict.
func (r *timeSlotRepositoryImpl) GetOrCreate(ctx context.Context, slot *schedule.TimeSlot) (*schedule.TimeSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_time_slots (name, start_time, end_time, duration_hours, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (start_time, end_time, duration_hours)
		DO UPDATE SET updated_at = NOW()
		RETURNING id, name, start_time, end_time, duration_hours, is_active, created_at, updated_at
	`

	var saved schedule.TimeSlot
	err := q.QueryRow(ctx, query,
		slot.Name,
		slot.StartTime,
		slot.EndTime,
		slot.DurationHours,
	).Scan(
		&saved.ID,
		&saved.Name,
		&saved.StartTime,
		&saved.EndTime,
		&saved.DurationHours,
		&saved.IsActive,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create time slot: %w", err)
	}

	return &saved, nil
}

// GetByID implements schedule.TimeSlotRepository.
func (r *timeSlotRepositoryImpl) GetByID(ctx context.Context, id string) (*schedule.TimeSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, duration_hours, is_active, created_at, updated_at
		FROM attendance_time_slots
		WHERE id = $1
	`

	var slot schedule.TimeSlot
	err := q.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.Name,
		&slot.StartTime,
		&slot.EndTime,
		&slot.DurationHours,
		&slot.IsActive,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, schedule.ErrTimeSlotNotFound
		}
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}

	return &slot, nil
}

// ListActive implements schedule.TimeSlotRepository.
func (r *timeSlotRepositoryImpl) ListActive(ctx context.Context) ([]schedule.TimeSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, duration_hours, is_active, created_at, updated_at
		FROM attendance_time_slots
		WHERE is_active = TRUE
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	defer rows.Close()

	var slots []schedule.TimeSlot
	for rows.Next() {
		var slot schedule.TimeSlot
		if err := rows.Scan(
			&slot.ID,
			&slot.Name,
			&slot.StartTime,
			&slot.EndTime,
			&slot.DurationHours,
			&slot.IsActive,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time slots: %w", err)
	}

	return slots, nil
}
