package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts the record. A storage-level unique index on
	// (seller_id, attendance_date) over non-cancelled rows is the real
	// duplicate gate; its violation surfaces as ErrAlreadySubmitted.
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	HasActiveForDay(ctx context.Context, sellerID string, date time.Time) (bool, error)
	ExistsForSlot(ctx context.Context, sellerID string, date time.Time, timeSlotID string) (bool, error)
	UpdateCheckIn(ctx context.Context, id string, at time.Time) error
	UpdateCheckOut(ctx context.Context, id string, at time.Time, hoursWorked *float64) error
	Cancel(ctx context.Context, id string) error
	// CancelStaleScheduled cancels scheduled records whose attendance date
	// is before the given day and that never reached check-in.
	CancelStaleScheduled(ctx context.Context, before time.Time) (int64, error)
	ListBySeller(ctx context.Context, sellerID string, filter ListFilter) ([]Attendance, int64, error)
	ListForReview(ctx context.Context, filter ReviewFilter) ([]Attendance, int64, error)
	GetReviewStats(ctx context.Context, filter ReviewFilter) (*ReviewStats, error)
	ListPhotoPathsBySeller(ctx context.Context, sellerID string) ([]string, error)
}
