package repositories

import (
	"testing"

	"flextrack/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestShiftListByRangeBoundsAreOptional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "work_date", "start_time", "end_time", "manual_hours", "notes"}).
		AddRow(1, "2024-06-01", "08:00", "12:00", nil, "").
		AddRow(2, "2024-06-02", nil, nil, 3.0, "folga parcial")

	mock.ExpectQuery("FROM shifts WHERE 1=1 AND work_date>=\\? AND work_date<=\\? ORDER BY work_date ASC, id ASC").
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(rows)

	repo := ShiftRepository{DB: db}
	shifts, err := repo.ListByRange("2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("ListByRange error: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].StartTime == nil || *shifts[0].StartTime != "08:00" {
		t.Fatalf("start time not scanned: %+v", shifts[0])
	}
	if shifts[1].ManualHours == nil || *shifts[1].ManualHours != 3.0 {
		t.Fatalf("manual hours not scanned: %+v", shifts[1])
	}

	// open range sends no bound arguments at all
	mock.ExpectQuery("FROM shifts WHERE 1=1 ORDER BY work_date ASC, id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "work_date", "start_time", "end_time", "manual_hours", "notes"}))
	if _, err := repo.ListByRange("", ""); err != nil {
		t.Fatalf("open range error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShiftGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM shifts WHERE id=\\?").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "work_date", "start_time", "end_time", "manual_hours", "notes"}))

	_, err = ShiftRepository{DB: db}.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestShiftDeleteCascades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("trip_id"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE expenses SET trip_id=NULL").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE expenses SET shift_id=NULL WHERE shift_id=\\?").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM trips WHERE shift_id=\\?").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM shifts WHERE id=\\?").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := (ShiftRepository{DB: db}).Delete(5); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShiftDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE expenses SET shift_id=NULL WHERE shift_id=\\?").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM trips WHERE shift_id=\\?").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM shifts WHERE id=\\?").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = ShiftRepository{DB: db}.Delete(42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
