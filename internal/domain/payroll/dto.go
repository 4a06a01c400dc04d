package payroll

type PeriodResponse struct {
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DaysUntilReset int    `json:"days_until_reset"`
}

type EarningsResponse struct {
	Period      PeriodResponse `json:"period"`
	SellerID    string         `json:"seller_id"`
	HoursWorked float64        `json:"hours_worked"`
	HourlyRate  float64        `json:"hourly_rate"`
	TotalEarned float64        `json:"total_earned"`
	WorkingDays int64          `json:"working_days"`
	TotalSolds  int64          `json:"total_solds"`
}
