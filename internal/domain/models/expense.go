package models

// DefaultExpenseCategory is used when the category field comes in blank.
const DefaultExpenseCategory = "Outros"

// Expense is a standalone cost, optionally linked to a shift or a trip.
type Expense struct {
	ID       int64  `json:"id"`
	ShiftID  *int64 `json:"shift_id,omitempty"`
	TripID   *int64 `json:"trip_id,omitempty"`
	ExpDate  string `json:"exp_date"` // YYYY-MM-DD
	Category string `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}
