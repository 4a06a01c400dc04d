package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/auth"
)

// MaintenanceJobs groups the periodic housekeeping the API otherwise never
// triggers: refresh token cleanup and abandoned bookings.
type MaintenanceJobs struct {
	attendanceRepo   attendance.AttendanceRepository
	refreshTokenRepo auth.RefreshTokenRepository
	loc              *time.Location
}

func NewMaintenanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	loc *time.Location,
) *MaintenanceJobs {
	return &MaintenanceJobs{
		attendanceRepo:   attendanceRepo,
		refreshTokenRepo: refreshTokenRepo,
		loc:              loc,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 1*time.Hour, j.PurgeExpiredRefreshTokens)
	scheduler.AddJob("cancel_stale_scheduled_attendance", 1*time.Hour, j.CancelStaleScheduledAttendance)
}

func (j *MaintenanceJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	n, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Cron: purged expired refresh tokens", "count", n)
	}
	return nil
}

// CancelStaleScheduledAttendance cancels bookings whose business day has
// passed without a check-in, releasing the day for a fresh submission.
func (j *MaintenanceJobs) CancelStaleScheduledAttendance(ctx context.Context) error {
	today := attendance.BusinessDay(time.Now().In(j.loc))

	n, err := j.attendanceRepo.CancelStaleScheduled(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to cancel stale scheduled attendance: %w", err)
	}
	if n > 0 {
		slog.Info("Cron: cancelled stale scheduled attendance", "count", n)
	}
	return nil
}
