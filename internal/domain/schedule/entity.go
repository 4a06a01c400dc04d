package schedule

import "time"

// TimeSlot is a reusable live-session window. Slots are deduplicated on
// (start_time, end_time, duration_hours) so repeated submissions with the
// same window share one row.
type TimeSlot struct {
	ID            string
	Name          string
	StartTime     string // "15:04:05"
	EndTime       string // "15:04:05"
	DurationHours float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
