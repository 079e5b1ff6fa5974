package services

import (
	"testing"

	"flextrack/internal/domain/models"
	"flextrack/internal/utils"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func fixtureShifts() []models.Shift {
	shift1, shift2 := int64(1), int64(2)
	return []models.Shift{
		{
			ID:        shift1,
			WorkDate:  "2024-06-01",
			StartTime: sptr("08:00"),
			EndTime:   sptr("12:00"),
			Trips: []models.Trip{
				{ID: 1, ShiftID: shift1, BlockPay: 60, Tips: 10, FuelCost: fptr(12), OdometerStart: fptr(100), OdometerEnd: fptr(125)},
				{ID: 2, ShiftID: shift1, BlockPay: 55, Tips: 10, FuelCost: fptr(8), OdometerStart: fptr(125), OdometerEnd: fptr(140)},
			},
		},
		{
			ID:          shift2,
			WorkDate:    "2024-06-02",
			ManualHours: fptr(3),
			Expenses: []models.Expense{
				{ID: 9, ShiftID: &shift2, Amount: 25, Category: "Manutenção"},
			},
		},
	}
}

func testReportService(shifts []models.Shift, rides []models.ScheduledRide) ReportService {
	return ReportService{
		Locale: utils.LocaleBR,
		ShiftLoader: func(start, end string) ([]models.Shift, error) {
			return shifts, nil
		},
		RideLoader: func(start, end string) ([]models.ScheduledRide, error) {
			return rides, nil
		},
	}
}

func TestShiftReportRowsMatchTotals(t *testing.T) {
	svc := testReportService(fixtureShifts(), nil)

	rep, err := svc.ShiftReport(ReportFilter{Start: "2024-06-01", End: "2024-06-30"})
	if err != nil {
		t.Fatalf("ShiftReport error: %v", err)
	}
	if len(rep.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rep.Rows))
	}
	if rep.Rows[0].Date != "01/06/2024" || rep.Rows[1].Date != "02/06/2024" {
		t.Fatalf("unexpected row dates: %q %q", rep.Rows[0].Date, rep.Rows[1].Date)
	}

	var earnings, fuel, other, net float64
	for _, row := range rep.Rows {
		earnings += row.Earnings
		fuel += row.Fuel
		other += row.Other
		net += row.Net
	}
	tot := rep.Totals
	if earnings != tot.Earnings || fuel != tot.Fuel || other != tot.Other || net != tot.Net {
		t.Fatalf("totals diverge from row sums: %+v", tot)
	}
	if tot.Days != 2 {
		t.Fatalf("days: got %d", tot.Days)
	}
}

func TestShiftReportNormalizesBounds(t *testing.T) {
	var gotStart, gotEnd string
	svc := ReportService{
		Locale: utils.LocaleBR,
		ShiftLoader: func(start, end string) ([]models.Shift, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}

	rep, err := svc.ShiftReport(ReportFilter{Start: "01/06/2024", End: "banana"})
	if err != nil {
		t.Fatalf("ShiftReport error: %v", err)
	}
	if gotStart != "2024-06-01" {
		t.Fatalf("start bound not canonicalized: %q", gotStart)
	}
	if gotEnd != "" {
		t.Fatalf("invalid end bound should be treated as open: %q", gotEnd)
	}
	if rep.Totals.Days != 0 || len(rep.Rows) != 0 {
		t.Fatalf("empty range should produce an empty report: %+v", rep)
	}
}

func TestShiftTableShape(t *testing.T) {
	svc := testReportService(fixtureShifts(), nil)

	tab, err := svc.ShiftTable(ReportFilter{Start: "2024-06-01", End: "2024-06-30"})
	if err != nil {
		t.Fatalf("ShiftTable error: %v", err)
	}
	if len(tab.Headers) != len(tab.Widths) {
		t.Fatalf("headers and widths out of sync: %d vs %d", len(tab.Headers), len(tab.Widths))
	}
	for i, row := range tab.Rows {
		if len(row) != len(tab.Headers) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(tab.Headers))
		}
	}
	if len(tab.Totals) != len(tab.Headers) {
		t.Fatalf("totals row has %d cells, want %d", len(tab.Totals), len(tab.Headers))
	}
	if tab.Totals[0].Text != "Totais" {
		t.Fatalf("totals label: got %q", tab.Totals[0].Text)
	}
	if tab.Totals[len(tab.Totals)-1].Text != "Dias: 2" {
		t.Fatalf("day count cell: got %q", tab.Totals[len(tab.Totals)-1].Text)
	}
	if tab.BaseName != "relatorio_2024-06-01_2024-06-30" {
		t.Fatalf("base name: got %q", tab.BaseName)
	}
}

func TestShiftTableUnboundedFilename(t *testing.T) {
	svc := testReportService(nil, nil)

	tab, err := svc.ShiftTable(ReportFilter{})
	if err != nil {
		t.Fatalf("ShiftTable error: %v", err)
	}
	if tab.BaseName != "relatorio_tudo_tudo" {
		t.Fatalf("base name: got %q", tab.BaseName)
	}
}

func TestScheduleTableShape(t *testing.T) {
	rides := []models.ScheduledRide{
		{ID: 1, Title: "Manhã", StartDT: "2024-07-01 08:00:00", HoursPlanned: fptr(2), ExpectedBlockPay: fptr(80)},
		{ID: 2, Title: "Tarde", StartDT: "2024-07-01 14:00:00", EndDT: sptr("2024-07-01 17:00:00"), ExpectedBlockPay: fptr(120), Tips: fptr(10)},
	}
	svc := testReportService(nil, rides)

	tab, err := svc.ScheduleTable(ReportFilter{Start: "2024-07-01", End: "2024-07-31"})
	if err != nil {
		t.Fatalf("ScheduleTable error: %v", err)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tab.Rows))
	}
	if tab.BaseName != "relatorio_agenda_2024-07-01_2024-07-31" {
		t.Fatalf("base name: got %q", tab.BaseName)
	}
	for _, cell := range tab.Totals {
		if cell.Text == "Corridas: 2" {
			return
		}
	}
	t.Fatalf("totals row missing the ride count: %+v", tab.Totals)
}
