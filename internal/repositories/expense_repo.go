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

type ExpenseRepository struct {
	DB *sql.DB
}

func (r ExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// tripRefColumn is empty on legacy databases created before expenses could be
// linked to a trip.
func (r ExpenseRepository) tripRefColumn() string {
	if intdb.HasColumn(r.db(), "expenses", "trip_id") {
		return "trip_id"
	}
	return "NULL"
}

func (r ExpenseRepository) columns() string {
	return fmt.Sprintf(`id, shift_id, %s,
	       DATE_FORMAT(exp_date,'%%Y-%%m-%%d'),
	       COALESCE(NULLIF(TRIM(category),''),'%s'),
	       COALESCE(amount,0),
	       COALESCE(notes,'')`, r.tripRefColumn(), models.DefaultExpenseCategory)
}

func scanExpense(rows interface{ Scan(...any) error }) (models.Expense, error) {
	var (
		e       models.Expense
		shiftID sql.NullInt64
		tripID  sql.NullInt64
	)
	if err := rows.Scan(&e.ID, &shiftID, &tripID, &e.ExpDate, &e.Category, &e.Amount, &e.Notes); err != nil {
		return e, err
	}
	e.ShiftID = intPtr(shiftID)
	e.TripID = intPtr(tripID)
	return e, nil
}

// ListForShifts returns every expense linked to any of the given shifts,
// directly or through one of their trips, in a single batched query. The
// report builder joins the result in memory instead of querying per shift.
func (r ExpenseRepository) ListForShifts(shiftIDs, tripIDs []int64) ([]models.Expense, error) {
	out := []models.Expense{}
	if len(shiftIDs) == 0 && len(tripIDs) == 0 {
		return out, nil
	}

	clauses := []string{}
	args := []any{}
	if len(shiftIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("shift_id IN (%s)", placeholders(len(shiftIDs))))
		args = append(args, int64Args(shiftIDs)...)
	}
	if len(tripIDs) > 0 && r.tripRefColumn() == "trip_id" {
		clauses = append(clauses, fmt.Sprintf("trip_id IN (%s)", placeholders(len(tripIDs))))
		args = append(args, int64Args(tripIDs)...)
	}
	if len(clauses) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE %s ORDER BY exp_date ASC, id ASC`,
		r.columns(), strings.Join(clauses, " OR "))

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExpenseRepository) List() ([]models.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses ORDER BY exp_date DESC, id DESC`, r.columns())
	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExpenseRepository) GetByID(id int64) (models.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE id=? LIMIT 1`, r.columns())
	e, err := scanExpense(r.db().QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, domain.NotFoundError{Resource: "despesa", Err: err}
	}
	return e, err
}

func (r ExpenseRepository) Create(e models.Expense) (int64, error) {
	category := strings.TrimSpace(e.Category)
	if category == "" {
		category = models.DefaultExpenseCategory
	}
	if r.tripRefColumn() == "trip_id" {
		res, err := r.db().Exec(`
			INSERT INTO expenses (shift_id, trip_id, exp_date, category, amount, notes)
			VALUES (?,?,?,?,?,?)`,
			nullInt(e.ShiftID), nullInt(e.TripID), e.ExpDate, category, e.Amount, intdb.NullIfEmpty(e.Notes))
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	res, err := r.db().Exec(`
		INSERT INTO expenses (shift_id, exp_date, category, amount, notes)
		VALUES (?,?,?,?,?)`,
		nullInt(e.ShiftID), e.ExpDate, category, e.Amount, intdb.NullIfEmpty(e.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ExpenseRepository) Update(e models.Expense) error {
	category := strings.TrimSpace(e.Category)
	if category == "" {
		category = models.DefaultExpenseCategory
	}
	var (
		res sql.Result
		err error
	)
	if r.tripRefColumn() == "trip_id" {
		res, err = r.db().Exec(`
			UPDATE expenses
			SET shift_id=?, trip_id=?, exp_date=?, category=?, amount=?, notes=?
			WHERE id=?`,
			nullInt(e.ShiftID), nullInt(e.TripID), e.ExpDate, category, e.Amount, intdb.NullIfEmpty(e.Notes), e.ID)
	} else {
		res, err = r.db().Exec(`
			UPDATE expenses
			SET shift_id=?, exp_date=?, category=?, amount=?, notes=?
			WHERE id=?`,
			nullInt(e.ShiftID), e.ExpDate, category, e.Amount, intdb.NullIfEmpty(e.Notes), e.ID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "despesa"}
	}
	return nil
}

func (r ExpenseRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "despesa"}
	}
	return nil
}

func (r ExpenseRepository) SumAll() (float64, error) {
	var sum float64
	err := r.db().QueryRow(`SELECT COALESCE(SUM(amount),0) FROM expenses`).Scan(&sum)
	return sum, err
}
