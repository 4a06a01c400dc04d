package attendance

import (
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusCheckedIn = "checked_in"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Attendance struct {
	ID             string
	SellerID       string
	TimeSlotID     *string
	AttendanceDate time.Time
	Status         string
	SoldsQuantity  int
	HoursWorked    *float64
	PhotoPath      *string
	CheckInAt      *time.Time
	CheckOutAt     *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	SellerName       *string
	SellerUsername   *string
	ExperienceStatus *string
	SlotName         *string
	SlotStartTime    *string
	SlotEndTime      *string
}

// IsActive reports whether the record still occupies its business day.
// Cancelled records release the day for a new submission.
func (a *Attendance) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanCancel reports whether the record may transition to cancelled.
// Only scheduled records are cancellable; checked-in and completed work
// is already on the books.
func (a *Attendance) CanCancel() bool {
	return a.Status == StatusScheduled
}

func (a *Attendance) CanCheckIn() bool {
	return a.Status == StatusScheduled
}

func (a *Attendance) CanCheckOut() bool {
	return a.Status == StatusCheckedIn
}
