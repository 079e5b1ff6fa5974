package models

// Trip is a single paid delivery inside a shift. Fuel and odometer fields are
// pointers: "not recorded" must stay distinct from zero until aggregation.
type Trip struct {
	ID            int64    `json:"id"`
	ShiftID       int64    `json:"shift_id"`
	BlockPay      float64  `json:"block_pay"`
	Tips          float64  `json:"tips"`
	FuelCost      *float64 `json:"fuel_cost,omitempty"`
	FuelVolumeGal *float64 `json:"fuel_volume_gal,omitempty"`
	OdometerStart *float64 `json:"odometer_start,omitempty"`
	OdometerEnd   *float64 `json:"odometer_end,omitempty"`
	Notes         string   `json:"notes"`
}
