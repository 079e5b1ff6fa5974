package handlers

import (
	"net/http"
	"time"

	"flextrack/internal/domain/models"
	"flextrack/internal/repositories"
	"flextrack/internal/utils"

	"github.com/gin-gonic/gin"
)

type expensePayload struct {
	ShiftID  *int64  `json:"shift_id"`
	TripID   *int64  `json:"trip_id"`
	ExpDate  string  `json:"exp_date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

func (p expensePayload) toModel(id int64) models.Expense {
	expDate := utils.NormalizeDate(p.ExpDate)
	if expDate == "" {
		expDate = utils.FormatDate(time.Now())
	}
	return models.Expense{
		ID:       id,
		ShiftID:  p.ShiftID,
		TripID:   p.TripID,
		ExpDate:  expDate,
		Category: p.Category,
		Amount:   p.Amount,
		Notes:    p.Notes,
	}
}

// GET /api/expenses
func GetExpenses(c *gin.Context) {
	items, err := repositories.ExpenseRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/expenses
func CreateExpense(c *gin.Context) {
	var req expensePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := repositories.ExpenseRepository{}.Create(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "despesa registrada"})
}

// PUT /api/expenses/:id
func UpdateExpense(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	var req expensePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := (repositories.ExpenseRepository{}).Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "despesa atualizada"})
}

// DELETE /api/expenses/:id
func DeleteExpense(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := (repositories.ExpenseRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "despesa excluída"})
}
