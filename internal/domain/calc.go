package domain

import (
	"time"

	"flextrack/internal/domain/models"
)

// ShiftDetail holds the derived values of a single shift.
type ShiftDetail struct {
	Hours    float64 `json:"hours"`
	Trips    int     `json:"trips"`
	Earnings float64 `json:"earnings"`
	Tips     float64 `json:"tips"`
	Fuel     float64 `json:"fuel"`
	Other    float64 `json:"other"`
	Miles    float64 `json:"miles"`
	Net      float64 `json:"net"`
}

// RangeTotals is the rollup over every shift of a report range.
type RangeTotals struct {
	Earnings float64 `json:"earnings"`
	Tips     float64 `json:"tips"`
	Fuel     float64 `json:"fuel"`
	Other    float64 `json:"other"`
	Hours    float64 `json:"hours"`
	Miles    float64 `json:"miles"`
	Days     int     `json:"days"`
	Net      float64 `json:"net"`
	PerHour  float64 `json:"per_hour"`
	PerMile  float64 `json:"per_mile"`
	PerDay   float64 `json:"per_day"`
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ShiftHours prefers a non-zero manual hour count; otherwise it needs both
// clock fields. An end before the start means the shift crossed midnight.
func ShiftHours(s models.Shift) float64 {
	if s.ManualHours != nil && *s.ManualHours != 0 {
		return *s.ManualHours
	}
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	start, ok1 := parseClock(*s.StartTime)
	end, ok2 := parseClock(*s.EndTime)
	if !ok1 || !ok2 {
		return 0
	}
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}

// TripMiles returns 0 unless both odometer readings are present; a reversed
// pair of readings is clamped to 0, never negative.
func TripMiles(t models.Trip) float64 {
	if t.OdometerStart == nil || t.OdometerEnd == nil {
		return 0
	}
	miles := *t.OdometerEnd - *t.OdometerStart
	if miles < 0 {
		return 0
	}
	return miles
}

func TotalEarnings(s models.Shift) float64 {
	var sum float64
	for _, t := range s.Trips {
		sum += t.BlockPay + t.Tips
	}
	return sum
}

func TotalTips(s models.Shift) float64 {
	var sum float64
	for _, t := range s.Trips {
		sum += t.Tips
	}
	return sum
}

func TotalFuel(s models.Shift) float64 {
	var sum float64
	for _, t := range s.Trips {
		if t.FuelCost != nil {
			sum += *t.FuelCost
		}
	}
	return sum
}

func TotalMiles(s models.Shift) float64 {
	var sum float64
	for _, t := range s.Trips {
		sum += TripMiles(t)
	}
	return sum
}

// OtherExpenses sums the expenses attached to the shift. Trip-linked expenses
// are attached to their owning shift by the repositories, so they roll up here
// together with the directly linked ones.
func OtherExpenses(s models.Shift) float64 {
	var sum float64
	for _, e := range s.Expenses {
		sum += e.Amount
	}
	return sum
}

func NetProfit(s models.Shift) float64 {
	return TotalEarnings(s) - TotalFuel(s) - OtherExpenses(s)
}

// ComputeShift derives every per-shift metric in one pass.
func ComputeShift(s models.Shift) ShiftDetail {
	d := ShiftDetail{
		Hours:    ShiftHours(s),
		Trips:    len(s.Trips),
		Earnings: TotalEarnings(s),
		Tips:     TotalTips(s),
		Fuel:     TotalFuel(s),
		Other:    OtherExpenses(s),
		Miles:    TotalMiles(s),
	}
	d.Net = d.Earnings - d.Fuel - d.Other
	return d
}

func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// AggregateShifts rolls the range up into a fresh totals value. A shift with
// no trips still counts a day and contributes its hours.
func AggregateShifts(shifts []models.Shift) RangeTotals {
	var tot RangeTotals
	for _, s := range shifts {
		d := ComputeShift(s)
		tot.Earnings += d.Earnings
		tot.Tips += d.Tips
		tot.Fuel += d.Fuel
		tot.Other += d.Other
		tot.Hours += d.Hours
		tot.Miles += d.Miles
		tot.Days++
	}
	tot.Net = tot.Earnings - tot.Fuel - tot.Other
	tot.PerHour = safeDiv(tot.Net, tot.Hours)
	tot.PerMile = safeDiv(tot.Net, tot.Miles)
	tot.PerDay = safeDiv(tot.Net, float64(tot.Days))
	return tot
}
