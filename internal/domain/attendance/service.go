package attendance

import (
	"context"

	"github.com/livehost-agency/agency-backend-go/internal/domain/schedule"
)

type AttendanceService interface {
	// Submit records a finished live session with its sales proof photo.
	Submit(ctx context.Context, req SubmitRequest) (*AttendanceResponse, error)

	// Scheduling flow. Available only when scheduling is enabled in config.
	Schedule(ctx context.Context, req ScheduleRequest) (*AttendanceResponse, error)
	CheckIn(ctx context.Context, attendanceID string) (*AttendanceResponse, error)
	CheckOut(ctx context.Context, attendanceID string) (*AttendanceResponse, error)
	Cancel(ctx context.Context, attendanceID string) error

	// ListSlots returns the active shift presets for the submission picker.
	ListSlots(ctx context.Context) ([]schedule.TimeSlotResponse, error)

	ListMine(ctx context.Context, filter ListFilter) (*ListResponse, error)
	ListForReview(ctx context.Context, filter ReviewFilter) (*ReviewResponse, error)
}
