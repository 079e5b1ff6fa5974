package services

import (
	"fmt"

	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
	"flextrack/internal/repositories"
	"flextrack/internal/utils"
)

// ReportFilter carries the raw range bounds as the client sent them.
// Unparseable or empty bounds mean "unbounded on that side".
type ReportFilter struct {
	Start string
	End   string
}

// ShiftRow is one realized shift of the range report.
type ShiftRow struct {
	ShiftID  int64   `json:"shift_id"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Trips    int     `json:"trips"`
	Earnings float64 `json:"earnings"`
	Tips     float64 `json:"tips"`
	Fuel     float64 `json:"fuel"`
	Other    float64 `json:"other"`
	Miles    float64 `json:"miles"`
	Net      float64 `json:"net"`
	Notes    string  `json:"notes"`
}

type ShiftReport struct {
	Start  string             `json:"start,omitempty"`
	End    string             `json:"end,omitempty"`
	Rows   []ShiftRow         `json:"rows"`
	Totals domain.RangeTotals `json:"totals"`
}

// RideRow is one planned ride of the forward-looking schedule report.
type RideRow struct {
	RideID int64   `json:"ride_id"`
	Start  string  `json:"start"`
	Hours  float64 `json:"hours"`
	Miles  float64 `json:"miles"`
	Pay    float64 `json:"pay"`
	Tips   float64 `json:"tips"`
	Fuel   float64 `json:"fuel"`
	Title  string  `json:"title"`
	Notes  string  `json:"notes"`
}

type ScheduleReport struct {
	Start  string                `json:"start,omitempty"`
	End    string                `json:"end,omitempty"`
	Rows   []RideRow             `json:"rows"`
	Totals domain.ScheduleTotals `json:"totals"`
}

type ReportService struct {
	ShiftRepo   repositories.ShiftRepository
	TripRepo    repositories.TripRepository
	ExpenseRepo repositories.ExpenseRepository
	RideRepo    repositories.ScheduledRideRepository
	Locale      utils.Locale
	RequestID   string

	// Loaders bypass the repositories; tests inject fully attached entities.
	ShiftLoader func(start, end string) ([]models.Shift, error)
	RideLoader  func(start, end string) ([]models.ScheduledRide, error)
}

func normalizeRange(f ReportFilter) (string, string) {
	return utils.NormalizeDate(f.Start), utils.NormalizeDate(f.End)
}

// loadShifts pulls the range's shifts and attaches trips and expenses with one
// batched query each. Trip-linked expenses land on the owning shift.
func (s ReportService) loadShifts(start, end string) ([]models.Shift, error) {
	if s.ShiftLoader != nil {
		return s.ShiftLoader(start, end)
	}

	shifts, err := s.ShiftRepo.ListByRange(start, end)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return shifts, nil
	}

	shiftIDs := make([]int64, 0, len(shifts))
	for _, sh := range shifts {
		shiftIDs = append(shiftIDs, sh.ID)
	}

	tripsByShift, err := s.TripRepo.ListByShiftIDs(shiftIDs)
	if err != nil {
		return nil, err
	}

	tripIDs := []int64{}
	tripOwner := map[int64]int64{}
	for shiftID, trips := range tripsByShift {
		for _, t := range trips {
			tripIDs = append(tripIDs, t.ID)
			tripOwner[t.ID] = shiftID
		}
	}

	expenses, err := s.ExpenseRepo.ListForShifts(shiftIDs, tripIDs)
	if err != nil {
		return nil, err
	}

	expensesByShift := map[int64][]models.Expense{}
	for _, e := range expenses {
		switch {
		case e.ShiftID != nil:
			expensesByShift[*e.ShiftID] = append(expensesByShift[*e.ShiftID], e)
		case e.TripID != nil:
			if owner, ok := tripOwner[*e.TripID]; ok {
				expensesByShift[owner] = append(expensesByShift[owner], e)
			}
		}
	}

	for i := range shifts {
		shifts[i].Trips = tripsByShift[shifts[i].ID]
		shifts[i].Expenses = expensesByShift[shifts[i].ID]
	}
	return shifts, nil
}

func (s ReportService) loadRides(start, end string) ([]models.ScheduledRide, error) {
	if s.RideLoader != nil {
		return s.RideLoader(start, end)
	}
	return s.RideRepo.ListByRange(start, end)
}

// ShiftReport builds the realized-earnings report: one row per in-range shift,
// ascending by work date, plus the aggregated totals.
func (s ReportService) ShiftReport(f ReportFilter) (ShiftReport, error) {
	start, end := normalizeRange(f)
	shifts, err := s.loadShifts(start, end)
	if err != nil {
		return ShiftReport{}, err
	}

	rows := make([]ShiftRow, 0, len(shifts))
	for _, sh := range shifts {
		d := domain.ComputeShift(sh)
		rows = append(rows, ShiftRow{
			ShiftID:  sh.ID,
			Date:     utils.FormatDateBR(sh.WorkDate),
			Hours:    d.Hours,
			Trips:    d.Trips,
			Earnings: d.Earnings,
			Tips:     d.Tips,
			Fuel:     d.Fuel,
			Other:    d.Other,
			Miles:    d.Miles,
			Net:      d.Net,
			Notes:    sh.Notes,
		})
	}

	totals := domain.AggregateShifts(shifts)
	utils.LogEvent(s.RequestID, "reports", "shift_report",
		fmt.Sprintf("rows=%d start=%q end=%q", len(rows), start, end))
	return ShiftReport{Start: start, End: end, Rows: rows, Totals: totals}, nil
}

// ScheduleReport builds the forward-looking report over planned rides.
func (s ReportService) ScheduleReport(f ReportFilter) (ScheduleReport, error) {
	start, end := normalizeRange(f)
	rides, err := s.loadRides(start, end)
	if err != nil {
		return ScheduleReport{}, err
	}

	rows := make([]RideRow, 0, len(rides))
	for _, r := range rides {
		d := domain.ComputeRide(r)
		rows = append(rows, RideRow{
			RideID: r.ID,
			Start:  utils.FormatDateTimeBR(r.StartDT),
			Hours:  d.Hours,
			Miles:  d.Miles,
			Pay:    d.Pay,
			Tips:   d.Tips,
			Fuel:   d.Fuel,
			Title:  r.Title,
			Notes:  r.Notes,
		})
	}

	totals := domain.AggregateRides(rides)
	utils.LogEvent(s.RequestID, "reports", "schedule_report",
		fmt.Sprintf("rows=%d start=%q end=%q", len(rows), start, end))
	return ScheduleReport{Start: start, End: end, Rows: rows, Totals: totals}, nil
}

func orTudo(s string) string {
	if s == "" {
		return "tudo"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return utils.FormatDateBR(s)
}

// ShiftTable renders the shift report into the shared export shape. All three
// exporters consume this one value, so their numeric content cannot diverge.
func (s ReportService) ShiftTable(f ReportFilter) (Table, error) {
	rep, err := s.ShiftReport(f)
	if err != nil {
		return Table{}, err
	}
	loc := s.Locale
	tot := rep.Totals

	t := Table{
		Title:    "Relatório de turnos",
		Period:   fmt.Sprintf("Período: %s a %s", orDash(rep.Start), orDash(rep.End)),
		Headers:  []string{"Data", "Horas", "Corridas", "Ganhos", "Gorjetas", "Combustível", "Outras", "KM", "Líquido", "Notas"},
		Widths:   []float64{24, 16, 20, 24, 24, 26, 22, 18, 24, 60},
		BaseName: fmt.Sprintf("relatorio_%s_%s", orTudo(rep.Start), orTudo(rep.End)),
		Summary: []string{
			fmt.Sprintf("Ganhos: %s | Combustível: %s | Outras: %s | Líquido: %s",
				utils.FormatCurrency(tot.Earnings, loc),
				utils.FormatCurrency(tot.Fuel, loc),
				utils.FormatCurrency(tot.Other, loc),
				utils.FormatCurrency(tot.Net, loc)),
			fmt.Sprintf("Horas: %s | KM: %s | Dias: %d | %s/h: %s | %s/km: %s",
				utils.FormatQty(tot.Hours, loc),
				utils.FormatQty(tot.Miles, loc),
				tot.Days,
				loc.Symbol, utils.FormatMoney(tot.PerHour, loc),
				loc.Symbol, utils.FormatMoney(tot.PerMile, loc)),
		},
	}

	tripCount := 0
	for _, row := range rep.Rows {
		tripCount += row.Trips
		t.Rows = append(t.Rows, []Cell{
			textCell(row.Date),
			qtyCell(row.Hours, loc),
			countCell(row.Trips),
			moneyCell(row.Earnings, loc),
			moneyCell(row.Tips, loc),
			moneyCell(row.Fuel, loc),
			moneyCell(row.Other, loc),
			qtyCell(row.Miles, loc),
			moneyCell(row.Net, loc),
			textCell(row.Notes),
		})
	}

	t.Totals = []Cell{
		textCell("Totais"),
		qtyCell(tot.Hours, loc),
		countCell(tripCount),
		moneyCell(tot.Earnings, loc),
		moneyCell(tot.Tips, loc),
		moneyCell(tot.Fuel, loc),
		moneyCell(tot.Other, loc),
		qtyCell(tot.Miles, loc),
		moneyCell(tot.Net, loc),
		textCell(fmt.Sprintf("Dias: %d", tot.Days)),
	}
	return t, nil
}

// ScheduleTable renders the schedule report into the shared export shape.
func (s ReportService) ScheduleTable(f ReportFilter) (Table, error) {
	rep, err := s.ScheduleReport(f)
	if err != nil {
		return Table{}, err
	}
	loc := s.Locale
	tot := rep.Totals

	t := Table{
		Title:    "Relatório de agendamentos",
		Period:   fmt.Sprintf("Período: %s a %s", orDash(rep.Start), orDash(rep.End)),
		Headers:  []string{"Início", "Horas", "KM", "Valor", "Gorjetas", "Combustível", "Título", "Notas"},
		Widths:   []float64{34, 16, 18, 24, 24, 26, 60, 55},
		BaseName: fmt.Sprintf("relatorio_agenda_%s_%s", orTudo(rep.Start), orTudo(rep.End)),
		Summary: []string{
			fmt.Sprintf("Corridas: %d | Horas: %s | KM: %s | Valor: %s | Gorjetas: %s | Combustível: %s",
				tot.Count,
				utils.FormatQty(tot.Hours, loc),
				utils.FormatQty(tot.Miles, loc),
				utils.FormatCurrency(tot.Pay, loc),
				utils.FormatCurrency(tot.Tips, loc),
				utils.FormatCurrency(tot.Fuel, loc)),
		},
	}

	for _, row := range rep.Rows {
		t.Rows = append(t.Rows, []Cell{
			textCell(row.Start),
			qtyCell(row.Hours, loc),
			qtyCell(row.Miles, loc),
			moneyCell(row.Pay, loc),
			moneyCell(row.Tips, loc),
			moneyCell(row.Fuel, loc),
			textCell(row.Title),
			textCell(row.Notes),
		})
	}

	t.Totals = []Cell{
		textCell("Totais"),
		qtyCell(tot.Hours, loc),
		qtyCell(tot.Miles, loc),
		moneyCell(tot.Pay, loc),
		moneyCell(tot.Tips, loc),
		moneyCell(tot.Fuel, loc),
		textCell(fmt.Sprintf("Corridas: %d", tot.Count)),
		textCell(""),
	}
	return t, nil
}
