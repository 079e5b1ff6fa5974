package handlers

import (
	"net/http"
	"time"

	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
	"flextrack/internal/repositories"
	"flextrack/internal/utils"

	"github.com/gin-gonic/gin"
)

type shiftPayload struct {
	WorkDate    string   `json:"work_date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	ManualHours *float64 `json:"manual_hours"`
	Notes       string   `json:"notes"`
}

func (p shiftPayload) toModel(id int64) models.Shift {
	workDate := utils.NormalizeDate(p.WorkDate)
	if workDate == "" {
		workDate = utils.FormatDate(time.Now())
	}
	return models.Shift{
		ID:          id,
		WorkDate:    workDate,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		ManualHours: p.ManualHours,
		Notes:       p.Notes,
	}
}

// GET /api/shifts?start=&end=
func GetShifts(c *gin.Context) {
	repo := repositories.ShiftRepository{}
	shifts, err := repo.ListByRange(utils.NormalizeDate(c.Query("start")), utils.NormalizeDate(c.Query("end")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GET /api/shifts/:id returns the shift with trips, expenses and the derived
// metrics attached.
func GetShiftByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}

	shift, err := repositories.ShiftRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	trips, err := repositories.TripRepository{}.ListByShiftIDs([]int64{id})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	shift.Trips = trips[id]

	tripIDs := make([]int64, 0, len(shift.Trips))
	for _, t := range shift.Trips {
		tripIDs = append(tripIDs, t.ID)
	}
	expenses, err := repositories.ExpenseRepository{}.ListForShifts([]int64{id}, tripIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	shift.Expenses = expenses

	c.JSON(http.StatusOK, gin.H{"shift": shift, "detail": domain.ComputeShift(shift)})
}

// POST /api/shifts
func CreateShift(c *gin.Context) {
	var req shiftPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := repositories.ShiftRepository{}.Create(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "turno adicionado"})
}

// PUT /api/shifts/:id
func UpdateShift(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	var req shiftPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := (repositories.ShiftRepository{}).Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "turno atualizado"})
}

// DELETE /api/shifts/:id removes the shift and its trips; linked expenses are
// kept with their references cleared.
func DeleteShift(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := (repositories.ShiftRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "turno excluído"})
}
