package models

// Shift is one realized work period. Trips and Expenses are attached by the
// repositories when a caller needs the full graph; list endpoints leave them nil.
type Shift struct {
	ID          int64    `json:"id"`
	WorkDate    string   `json:"work_date"`            // YYYY-MM-DD
	StartTime   *string  `json:"start_time,omitempty"` // HH:MM
	EndTime     *string  `json:"end_time,omitempty"`   // HH:MM
	ManualHours *float64 `json:"manual_hours,omitempty"`
	Notes       string   `json:"notes"`

	Trips    []Trip    `json:"trips,omitempty"`
	Expenses []Expense `json:"expenses,omitempty"`
}
