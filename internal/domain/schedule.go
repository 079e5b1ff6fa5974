package domain

import (
	"time"

	"flextrack/internal/domain/models"
)

var rideLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02T15:04:05", "2006-01-02T15:04"}

// RideDetail holds the derived values of a single scheduled ride.
type RideDetail struct {
	Hours float64 `json:"hours"`
	Miles float64 `json:"miles"`
	Pay   float64 `json:"pay"`
	Tips  float64 `json:"tips"`
	Fuel  float64 `json:"fuel"`
}

// ScheduleTotals is the rollup over the scheduled rides of a range.
type ScheduleTotals struct {
	Hours float64 `json:"hours"`
	Miles float64 `json:"miles"`
	Pay   float64 `json:"pay"`
	Tips  float64 `json:"tips"`
	Fuel  float64 `json:"fuel"`
	Count int     `json:"count"`
}

func parseRideDT(s string) (time.Time, bool) {
	for _, layout := range rideLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// RideHours uses the planned end when present, else the planned hour count.
func RideHours(r models.ScheduledRide) float64 {
	if r.EndDT != nil {
		start, ok1 := parseRideDT(r.StartDT)
		end, ok2 := parseRideDT(*r.EndDT)
		if ok1 && ok2 && end.After(start) {
			return end.Sub(start).Hours()
		}
	}
	return deref(r.HoursPlanned)
}

func RideMiles(r models.ScheduledRide) float64 {
	if r.OdometerStart == nil || r.OdometerEnd == nil {
		return 0
	}
	miles := *r.OdometerEnd - *r.OdometerStart
	if miles < 0 {
		return 0
	}
	return miles
}

func ComputeRide(r models.ScheduledRide) RideDetail {
	return RideDetail{
		Hours: RideHours(r),
		Miles: RideMiles(r),
		Pay:   deref(r.ExpectedBlockPay),
		Tips:  deref(r.Tips),
		Fuel:  deref(r.FuelCost),
	}
}

func AggregateRides(rides []models.ScheduledRide) ScheduleTotals {
	var tot ScheduleTotals
	for _, r := range rides {
		d := ComputeRide(r)
		tot.Hours += d.Hours
		tot.Miles += d.Miles
		tot.Pay += d.Pay
		tot.Tips += d.Tips
		tot.Fuel += d.Fuel
		tot.Count++
	}
	return tot
}
