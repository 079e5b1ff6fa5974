package models

// ScheduledRide is a planned future work block shown on the calendar. It never
// feeds the realized-shift aggregation, only the forward-looking report.
type ScheduledRide struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	StartDT          string   `json:"start_dt"` // YYYY-MM-DD HH:MM:SS
	EndDT            *string  `json:"end_dt,omitempty"`
	HoursPlanned     *float64 `json:"hours_planned,omitempty"`
	ExpectedBlockPay *float64 `json:"expected_block_pay,omitempty"`
	Tips             *float64 `json:"tips,omitempty"`
	FuelCost         *float64 `json:"fuel_cost,omitempty"`
	OdometerStart    *float64 `json:"odometer_start,omitempty"`
	OdometerEnd      *float64 `json:"odometer_end,omitempty"`
	Notes            string   `json:"notes"`
}
