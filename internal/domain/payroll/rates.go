package payroll

import "github.com/livehost-agency/agency-backend-go/internal/domain/user"

// Hourly rates by experience status, in PHP per hour.
const (
	RateNewbie  = 100.0
	RateTenured = 150.0
)

func HourlyRate(status user.ExperienceStatus) float64 {
	if status == user.ExperienceTenured {
		return RateTenured
	}
	return RateNewbie
}
