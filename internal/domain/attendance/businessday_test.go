package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "one minute before cutover belongs to yesterday",
			at:   time.Date(2025, 3, 15, 5, 59, 0, 0, loc),
			want: "2025-03-14",
		},
		{
			name: "cutover itself belongs to today",
			at:   time.Date(2025, 3, 15, 6, 0, 0, 0, loc),
			want: "2025-03-15",
		},
		{
			name: "midnight belongs to yesterday",
			at:   time.Date(2025, 3, 15, 0, 0, 0, 0, loc),
			want: "2025-03-14",
		},
		{
			name: "evening belongs to today",
			at:   time.Date(2025, 3, 15, 22, 30, 0, 0, loc),
			want: "2025-03-15",
		},
		{
			name: "early hours on the 1st roll back into the previous month",
			at:   time.Date(2025, 3, 1, 2, 0, 0, 0, loc),
			want: "2025-02-28",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BusinessDay(c.at)
			assert.Equal(t, c.want, got.Format("2006-01-02"))
			assert.Equal(t, 0, got.Hour())
		})
	}
}

func TestComputeHoursWorked(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  *float64
	}{
		{"plain daytime shift", "08:00:00", "11:00:00", ptr(3.0)},
		{"shift crossing midnight", "22:00:00", "02:00:00", ptr(4.0)},
		{"equal times read as a full day", "10:00:00", "10:00:00", ptr(24.0)},
		{"half hour precision", "20:00:00", "23:30:00", ptr(3.5)},
		{"unparseable start gives no hours", "late", "02:00:00", nil},
		{"unparseable end gives no hours", "22:00:00", "", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeHoursWorked(c.start, c.end)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.InDelta(t, *c.want, *got, 0.001)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
