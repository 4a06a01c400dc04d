package attendance

import (
	"math"
	"time"
)

// CutoverHour is the wall-clock hour at which a new business day starts.
// Live sessions commonly run past midnight; anything before 06:00 counts
// toward the previous calendar date.
const CutoverHour = 6

// BusinessDay maps a wall-clock instant to the business date it belongs to.
// The returned time is midnight of that date in t's location.
func BusinessDay(t time.Time) time.Time {
	if t.Hour() < CutoverHour {
		t = t.AddDate(0, 0, -1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeHoursWorked derives the session length from "15:04:05" slot times.
// An end at or before the start means the session crossed midnight, so a
// day is added. Returns nil when either time fails to parse; a submission
// with unreadable slot times is stored without hours rather than rejected.
func ComputeHoursWorked(startTime, endTime string) *float64 {
	start, err := time.Parse("15:04:05", startTime)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04:05", endTime)
	if err != nil {
		return nil
	}

	diff := end.Sub(start)
	if diff <= 0 {
		diff += 24 * time.Hour
	}

	hours := math.Round(diff.Hours()*100) / 100
	return &hours
}
