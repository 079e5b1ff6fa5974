package repositories

import (
	"testing"

	"flextrack/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "shift_id", "trip_id", "exp_date", "category", "amount", "notes"})
}

func TestExpenseListForShiftsBatchesOneQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// trip reference column is probed twice: once for the where clause, once
	// for the select list
	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("trip_id"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("trip_id"))

	mock.ExpectQuery("FROM expenses WHERE shift_id IN \\(\\?,\\?\\) OR trip_id IN \\(\\?\\) ORDER BY exp_date ASC, id ASC").
		WithArgs(int64(1), int64(2), int64(10)).
		WillReturnRows(expenseRows().
			AddRow(1, 1, nil, "2024-06-01", "Pedágio", 12.5, "").
			AddRow(2, nil, 10, "2024-06-01", "Outros", 5.0, "estacionamento"))

	out, err := ExpenseRepository{DB: db}.ListForShifts([]int64{1, 2}, []int64{10})
	if err != nil {
		t.Fatalf("ListForShifts error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(out))
	}
	if out[0].ShiftID == nil || *out[0].ShiftID != 1 {
		t.Fatalf("shift reference not scanned: %+v", out[0])
	}
	if out[1].TripID == nil || *out[1].TripID != 10 {
		t.Fatalf("trip reference not scanned: %+v", out[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExpenseListForShiftsLegacySchemaSkipsTripClause(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// database predates the trip reference column
	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	mock.ExpectQuery("FROM expenses WHERE shift_id IN \\(\\?\\) ORDER BY exp_date ASC, id ASC").
		WithArgs(int64(1)).
		WillReturnRows(expenseRows().AddRow(1, 1, nil, "2024-06-01", "Outros", 9.9, ""))

	out, err := ExpenseRepository{DB: db}.ListForShifts([]int64{1}, []int64{10, 11})
	if err != nil {
		t.Fatalf("ListForShifts error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(out))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExpenseListForShiftsNoIDsShortCircuits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	out, err := ExpenseRepository{DB: db}.ListForShifts(nil, nil)
	if err != nil {
		t.Fatalf("ListForShifts error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no expenses, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should run: %v", err)
	}
}

func TestExpenseCreateDefaultsCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("expenses", "trip_id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("trip_id"))

	shiftID := int64(3)
	mock.ExpectExec("INSERT INTO expenses").
		WithArgs(shiftID, nil, "2024-06-05", "Outros", 18.0, nil).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := ExpenseRepository{DB: db}.Create(models.Expense{
		ShiftID: &shiftID,
		ExpDate: "2024-06-05",
		Amount:  18.0,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
