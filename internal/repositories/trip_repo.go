package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "flextrack/internal/config"
	intdb "flextrack/internal/db"
	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, shift_id,
	       COALESCE(block_pay,0),
	       COALESCE(tips,0),
	       fuel_cost,
	       fuel_volume_gal,
	       odometer_start,
	       odometer_end,
	       COALESCE(notes,'')`

func scanTrip(rows interface{ Scan(...any) error }) (models.Trip, error) {
	var (
		t        models.Trip
		fuelCost sql.NullFloat64
		fuelVol  sql.NullFloat64
		odoStart sql.NullFloat64
		odoEnd   sql.NullFloat64
	)
	if err := rows.Scan(&t.ID, &t.ShiftID, &t.BlockPay, &t.Tips, &fuelCost, &fuelVol, &odoStart, &odoEnd, &t.Notes); err != nil {
		return t, err
	}
	t.FuelCost = floatPtr(fuelCost)
	t.FuelVolumeGal = floatPtr(fuelVol)
	t.OdometerStart = floatPtr(odoStart)
	t.OdometerEnd = floatPtr(odoEnd)
	return t, nil
}

// ListByShiftIDs fetches the trips of every given shift in one query, keyed by
// shift. One batched lookup per report keeps the builder linear in the record
// count.
func (r TripRepository) ListByShiftIDs(shiftIDs []int64) (map[int64][]models.Trip, error) {
	out := map[int64][]models.Trip{}
	if len(shiftIDs) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM trips WHERE shift_id IN (%s) ORDER BY shift_id ASC, id ASC`,
		tripColumns, placeholders(len(shiftIDs)))

	rows, err := r.db().Query(query, int64Args(shiftIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out[t.ShiftID] = append(out[t.ShiftID], t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id=? LIMIT 1`, tripColumns)
	t, err := scanTrip(r.db().QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "corrida", Err: err}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (shift_id, block_pay, tips, fuel_cost, fuel_volume_gal, odometer_start, odometer_end, notes)
		VALUES (?,?,?,?,?,?,?,?)`,
		t.ShiftID, t.BlockPay, t.Tips, nullFloat(t.FuelCost), nullFloat(t.FuelVolumeGal),
		nullFloat(t.OdometerStart), nullFloat(t.OdometerEnd), intdb.NullIfEmpty(t.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET shift_id=?, block_pay=?, tips=?, fuel_cost=?, fuel_volume_gal=?, odometer_start=?, odometer_end=?, notes=?
		WHERE id=?`,
		t.ShiftID, t.BlockPay, t.Tips, nullFloat(t.FuelCost), nullFloat(t.FuelVolumeGal),
		nullFloat(t.OdometerStart), nullFloat(t.OdometerEnd), intdb.NullIfEmpty(t.Notes), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "corrida"}
	}
	return nil
}

func (r TripRepository) Delete(id int64) error {
	db := r.db()
	if intdb.HasColumn(db, "expenses", "trip_id") {
		if _, err := db.Exec(`UPDATE expenses SET trip_id=NULL WHERE trip_id=?`, id); err != nil {
			return err
		}
	}
	res, err := db.Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "corrida"}
	}
	return nil
}

// TripSums backs the dashboard summary card.
type TripSums struct {
	BlockPay float64 `json:"block_pay"`
	Tips     float64 `json:"tips"`
	Fuel     float64 `json:"fuel"`
	Count    int     `json:"count"`
}

func (r TripRepository) Sums() (TripSums, error) {
	var s TripSums
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(block_pay),0),
		       COALESCE(SUM(tips),0),
		       COALESCE(SUM(fuel_cost),0),
		       COUNT(*)
		FROM trips`).Scan(&s.BlockPay, &s.Tips, &s.Fuel, &s.Count)
	return s, err
}
