package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor(t *testing.T) {
	cases := []struct {
		name      string
		date      time.Time
		wantStart string
		wantEnd   string
		wantName  string
	}{
		{
			name:      "first half",
			date:      date(2025, time.January, 7),
			wantStart: "2025-01-01",
			wantEnd:   "2025-01-15",
			wantName:  "January 1 - 15, 2025",
		},
		{
			name:      "boundary day 15 stays in the first half",
			date:      date(2025, time.January, 15),
			wantStart: "2025-01-01",
			wantEnd:   "2025-01-15",
			wantName:  "January 1 - 15, 2025",
		},
		{
			name:      "day 16 opens the second half",
			date:      date(2025, time.January, 16),
			wantStart: "2025-01-16",
			wantEnd:   "2025-01-31",
			wantName:  "January 16 - 31, 2025",
		},
		{
			name:      "30-day month",
			date:      date(2025, time.April, 20),
			wantStart: "2025-04-16",
			wantEnd:   "2025-04-30",
			wantName:  "April 16 - 30, 2025",
		},
		{
			name:      "february non-leap",
			date:      date(2025, time.February, 20),
			wantStart: "2025-02-16",
			wantEnd:   "2025-02-28",
			wantName:  "February 16 - 28, 2025",
		},
		{
			name:      "february leap",
			date:      date(2024, time.February, 20),
			wantStart: "2024-02-16",
			wantEnd:   "2024-02-29",
			wantName:  "February 16 - 29, 2024",
		},
		{
			name:      "december second half stays in december",
			date:      date(2025, time.December, 31),
			wantStart: "2025-12-16",
			wantEnd:   "2025-12-31",
			wantName:  "December 16 - 31, 2025",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := PeriodFor(c.date)
			assert.Equal(t, c.wantStart, p.Start.Format("2006-01-02"))
			assert.Equal(t, c.wantEnd, p.End.Format("2006-01-02"))
			assert.Equal(t, c.wantName, p.Name)

			// The period always contains its anchor date, same month.
			assert.False(t, c.date.Before(p.Start))
			assert.False(t, c.date.After(p.End))
			assert.Equal(t, c.date.Month(), p.Start.Month())
			assert.Equal(t, c.date.Month(), p.End.Month())
		})
	}
}

func TestDaysUntilReset(t *testing.T) {
	assert.Equal(t, 0, DaysUntilReset(date(2025, time.January, 15)))
	assert.Equal(t, 1, DaysUntilReset(date(2025, time.January, 14)))
	assert.Equal(t, 14, DaysUntilReset(date(2025, time.January, 1)))
	assert.Equal(t, 0, DaysUntilReset(date(2025, time.January, 31)))

	// Mid-day anchors still round up to the next whole day.
	assert.Equal(t, 1, DaysUntilReset(time.Date(2025, time.January, 14, 18, 0, 0, 0, time.UTC)))
}

func TestDaysUntilResetMonotone(t *testing.T) {
	prev := DaysUntilReset(date(2025, time.March, 1))
	for d := 2; d <= 15; d++ {
		cur := DaysUntilReset(date(2025, time.March, d))
		assert.LessOrEqual(t, cur, prev, "day %d", d)
		prev = cur
	}
	assert.Equal(t, 0, prev)
}

func TestHourlyRate(t *testing.T) {
	assert.Equal(t, 150.0, HourlyRate("tenured"))
	assert.Equal(t, 100.0, HourlyRate("newbie"))
	assert.Equal(t, 100.0, HourlyRate(""))
}
