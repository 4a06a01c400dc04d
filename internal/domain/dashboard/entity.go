package dashboard

import "time"

// SellerPerformanceRow is one seller's aggregate over a date range:
// summed solds and hours plus distinct working days, non-cancelled
// records only. Rows come back from storage unordered; ranking happens
// in the service layer.
type SellerPerformanceRow struct {
	SellerID         string
	Username         string
	FullName         string
	ExperienceStatus string
	TotalSolds       int64
	TotalHours       float64
	WorkingDays      int64
}

// DateRange is an inclusive [Start, End] window of business dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}
