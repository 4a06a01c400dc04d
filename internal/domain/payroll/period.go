package payroll

import (
	"fmt"
	"math"
	"time"
)

// Period is a half-month pay window: the 1st through the 15th, or the
// 16th through the last day of the month.
type Period struct {
	Start time.Time
	End   time.Time
	Name  string
}

// PeriodFor returns the pay period containing date. Start and End are
// midnights in date's location; End is inclusive.
func PeriodFor(date time.Time) Period {
	year, month, day := date.Date()
	loc := date.Location()

	var start, end time.Time
	if day <= 15 {
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, 15, 0, 0, 0, 0, loc)
	} else {
		start = time.Date(year, month, 16, 0, 0, 0, 0, loc)
		// Day zero of the next month normalizes to the last day of this one.
		end = time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	}

	return Period{
		Start: start,
		End:   end,
		Name:  fmt.Sprintf("%s %d - %d, %d", start.Month(), start.Day(), end.Day(), start.Year()),
	}
}

// DaysUntilReset counts whole days from date until the period containing it
// ends. Zero on the period's last day, never negative.
func (p Period) DaysUntilReset(date time.Time) int {
	remaining := p.End.Sub(date)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// DaysUntilReset is the one-shot form over the period containing date.
func DaysUntilReset(date time.Time) int {
	return PeriodFor(date).DaysUntilReset(date)
}
