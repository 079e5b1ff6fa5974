package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "flextrack/internal/config"
	intdb "flextrack/internal/db"
	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
)

type ScheduledRideRepository struct {
	DB *sql.DB
}

func (r ScheduledRideRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const rideColumns = `id,
	       COALESCE(title,''),
	       DATE_FORMAT(start_dt,'%Y-%m-%d %H:%i:%s'),
	       DATE_FORMAT(end_dt,'%Y-%m-%d %H:%i:%s'),
	       hours_planned,
	       expected_block_pay,
	       tips,
	       fuel_cost,
	       odometer_start,
	       odometer_end,
	       COALESCE(notes,'')`

func scanRide(rows interface{ Scan(...any) error }) (models.ScheduledRide, error) {
	var (
		m        models.ScheduledRide
		endDT    sql.NullString
		hours    sql.NullFloat64
		pay      sql.NullFloat64
		tips     sql.NullFloat64
		fuel     sql.NullFloat64
		odoStart sql.NullFloat64
		odoEnd   sql.NullFloat64
	)
	if err := rows.Scan(&m.ID, &m.Title, &m.StartDT, &endDT, &hours, &pay, &tips, &fuel, &odoStart, &odoEnd, &m.Notes); err != nil {
		return m, err
	}
	m.EndDT = strPtr(endDT)
	m.HoursPlanned = floatPtr(hours)
	m.ExpectedBlockPay = floatPtr(pay)
	m.Tips = floatPtr(tips)
	m.FuelCost = floatPtr(fuel)
	m.OdometerStart = floatPtr(odoStart)
	m.OdometerEnd = floatPtr(odoEnd)
	return m, nil
}

// ListByRange returns rides whose start falls on a day inside [start, end],
// both bounds inclusive dates, ordered by start then id.
func (r ScheduledRideRepository) ListByRange(start, end string) ([]models.ScheduledRide, error) {
	where := []string{"1=1"}
	args := []any{}
	if strings.TrimSpace(start) != "" {
		where = append(where, "start_dt>=?")
		args = append(args, strings.TrimSpace(start)+" 00:00:00")
	}
	if strings.TrimSpace(end) != "" {
		where = append(where, "start_dt<=?")
		args = append(args, strings.TrimSpace(end)+" 23:59:59")
	}

	query := fmt.Sprintf(`SELECT %s FROM scheduled_rides WHERE %s ORDER BY start_dt ASC, id ASC`,
		rideColumns, strings.Join(where, " AND "))

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ScheduledRide{}
	for rows.Next() {
		m, err := scanRide(rows)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r ScheduledRideRepository) GetByID(id int64) (models.ScheduledRide, error) {
	query := fmt.Sprintf(`SELECT %s FROM scheduled_rides WHERE id=? LIMIT 1`, rideColumns)
	m, err := scanRide(r.db().QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, domain.NotFoundError{Resource: "agendamento", Err: err}
	}
	return m, err
}

func (r ScheduledRideRepository) Create(m models.ScheduledRide) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO scheduled_rides
			(title, start_dt, end_dt, hours_planned, expected_block_pay, tips, fuel_cost, odometer_start, odometer_end, notes)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		m.Title, m.StartDT, nullStr(m.EndDT), nullFloat(m.HoursPlanned), nullFloat(m.ExpectedBlockPay),
		nullFloat(m.Tips), nullFloat(m.FuelCost), nullFloat(m.OdometerStart), nullFloat(m.OdometerEnd),
		intdb.NullIfEmpty(m.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ScheduledRideRepository) Update(m models.ScheduledRide) error {
	res, err := r.db().Exec(`
		UPDATE scheduled_rides
		SET title=?, start_dt=?, end_dt=?, hours_planned=?, expected_block_pay=?, tips=?, fuel_cost=?, odometer_start=?, odometer_end=?, notes=?
		WHERE id=?`,
		m.Title, m.StartDT, nullStr(m.EndDT), nullFloat(m.HoursPlanned), nullFloat(m.ExpectedBlockPay),
		nullFloat(m.Tips), nullFloat(m.FuelCost), nullFloat(m.OdometerStart), nullFloat(m.OdometerEnd),
		intdb.NullIfEmpty(m.Notes), m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agendamento"}
	}
	return nil
}

func (r ScheduledRideRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM scheduled_rides WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agendamento"}
	}
	return nil
}
