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

type ShiftRepository struct {
	DB *sql.DB
}

func (r ShiftRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const shiftColumns = `id,
	       DATE_FORMAT(work_date,'%Y-%m-%d'),
	       TIME_FORMAT(start_time,'%H:%i'),
	       TIME_FORMAT(end_time,'%H:%i'),
	       manual_hours,
	       COALESCE(notes,'')`

func scanShift(rows interface{ Scan(...any) error }) (models.Shift, error) {
	var (
		s          models.Shift
		startTime  sql.NullString
		endTime    sql.NullString
		manualHrs  sql.NullFloat64
	)
	if err := rows.Scan(&s.ID, &s.WorkDate, &startTime, &endTime, &manualHrs, &s.Notes); err != nil {
		return s, err
	}
	s.StartTime = strPtr(startTime)
	s.EndTime = strPtr(endTime)
	s.ManualHours = floatPtr(manualHrs)
	return s, nil
}

// ListByRange returns the shifts whose work date falls inside [start, end].
// Both bounds are optional and inclusive; an empty bound leaves that side
// open. Ordering by date then id is a contract the report exporters rely on.
func (r ShiftRepository) ListByRange(start, end string) ([]models.Shift, error) {
	where := []string{"1=1"}
	args := []any{}
	if strings.TrimSpace(start) != "" {
		where = append(where, "work_date>=?")
		args = append(args, strings.TrimSpace(start))
	}
	if strings.TrimSpace(end) != "" {
		where = append(where, "work_date<=?")
		args = append(args, strings.TrimSpace(end))
	}

	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE %s ORDER BY work_date ASC, id ASC`,
		shiftColumns, strings.Join(where, " AND "))

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Shift{}
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ShiftRepository) GetByID(id int64) (models.Shift, error) {
	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE id=? LIMIT 1`, shiftColumns)
	s, err := scanShift(r.db().QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.NotFoundError{Resource: "turno", Err: err}
	}
	return s, err
}

func (r ShiftRepository) Create(s models.Shift) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO shifts (work_date, start_time, end_time, manual_hours, notes)
		VALUES (?,?,?,?,?)`,
		s.WorkDate, nullStr(s.StartTime), nullStr(s.EndTime), nullFloat(s.ManualHours), intdb.NullIfEmpty(s.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ShiftRepository) Update(s models.Shift) error {
	res, err := r.db().Exec(`
		UPDATE shifts
		SET work_date=?, start_time=?, end_time=?, manual_hours=?, notes=?
		WHERE id=?`,
		s.WorkDate, nullStr(s.StartTime), nullStr(s.EndTime), nullFloat(s.ManualHours), intdb.NullIfEmpty(s.Notes), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "turno"}
	}
	return nil
}

// Delete removes the shift and its trips; linked expenses survive as
// standalone records with their shift/trip references cleared.
func (r ShiftRepository) Delete(id int64) error {
	db := r.db()
	hasTripRef := intdb.HasColumn(db, "expenses", "trip_id")

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if hasTripRef {
		if _, err := tx.Exec(`
			UPDATE expenses SET trip_id=NULL
			WHERE trip_id IN (SELECT id FROM trips WHERE shift_id=?)`, id); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`UPDATE expenses SET shift_id=NULL WHERE shift_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM trips WHERE shift_id=?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM shifts WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "turno"}
	}
	return tx.Commit()
}

func (r ShiftRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM shifts`).Scan(&n)
	return n, err
}
