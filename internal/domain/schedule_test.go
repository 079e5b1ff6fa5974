package domain

import (
	"testing"

	"flextrack/internal/domain/models"
)

func TestRideHours_EndBeatsPlanned(t *testing.T) {
	r := models.ScheduledRide{
		StartDT:      "2024-07-01 08:00:00",
		EndDT:        sptr("2024-07-01 11:30:00"),
		HoursPlanned: fptr(2),
	}
	if got := RideHours(r); !almostEqual(got, 3.5) {
		t.Fatalf("expected 3.5 hours from the end timestamp, got %v", got)
	}
}

func TestRideHours_FallsBackToPlanned(t *testing.T) {
	r := models.ScheduledRide{StartDT: "2024-07-01 08:00:00", HoursPlanned: fptr(2)}
	if got := RideHours(r); !almostEqual(got, 2) {
		t.Fatalf("expected planned hours, got %v", got)
	}

	// end not after start is ignored
	r.EndDT = sptr("2024-07-01 07:00:00")
	if got := RideHours(r); !almostEqual(got, 2) {
		t.Fatalf("end before start should fall back to planned, got %v", got)
	}
}

func TestRideHours_AcceptsISOForm(t *testing.T) {
	r := models.ScheduledRide{
		StartDT: "2024-07-01T08:00",
		EndDT:   sptr("2024-07-01T09:00"),
	}
	if got := RideHours(r); !almostEqual(got, 1) {
		t.Fatalf("expected 1 hour, got %v", got)
	}
}

func TestAggregateRides(t *testing.T) {
	rides := []models.ScheduledRide{
		{StartDT: "2024-07-01 08:00", HoursPlanned: fptr(2), ExpectedBlockPay: fptr(80), Tips: fptr(5)},
		{StartDT: "2024-07-02 08:00", HoursPlanned: fptr(3), ExpectedBlockPay: fptr(120), FuelCost: fptr(30),
			OdometerStart: fptr(10), OdometerEnd: fptr(60)},
	}
	tot := AggregateRides(rides)
	if tot.Count != 2 {
		t.Fatalf("count: got %d", tot.Count)
	}
	if !almostEqual(tot.Hours, 5) || !almostEqual(tot.Pay, 200) {
		t.Fatalf("hours/pay: got %v/%v", tot.Hours, tot.Pay)
	}
	if !almostEqual(tot.Tips, 5) || !almostEqual(tot.Fuel, 30) || !almostEqual(tot.Miles, 50) {
		t.Fatalf("tips/fuel/miles: got %v/%v/%v", tot.Tips, tot.Fuel, tot.Miles)
	}
}
