package postgresql

import (
	"context"
	"fmt"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, log *activity.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (user_id, action, details, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.UserID,
		log.Action,
		log.Details,
		log.IPAddress,
		log.UserAgent,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}

// ListRecent implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]activity.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.action, l.details, l.ip_address, l.user_agent, l.created_at,
			   u.username, u.full_name
		FROM activity_logs l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []activity.Log
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Action,
			&l.Details,
			&l.IPAddress,
			&l.UserAgent,
			&l.CreatedAt,
			&l.Username,
			&l.FullName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity logs: %w", err)
	}

	return logs, nil
}
