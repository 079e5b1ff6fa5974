package handlers

import (
	"net/http"

	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
	"flextrack/internal/repositories"

	"github.com/gin-gonic/gin"
)

type tripPayload struct {
	ShiftID       int64    `json:"shift_id"`
	BlockPay      float64  `json:"block_pay"`
	Tips          float64  `json:"tips"`
	FuelCost      *float64 `json:"fuel_cost"`
	FuelVolumeGal *float64 `json:"fuel_volume_gal"`
	OdometerStart *float64 `json:"odometer_start"`
	OdometerEnd   *float64 `json:"odometer_end"`
	Notes         string   `json:"notes"`
}

func (p tripPayload) toModel(id int64) models.Trip {
	return models.Trip{
		ID:            id,
		ShiftID:       p.ShiftID,
		BlockPay:      p.BlockPay,
		Tips:          p.Tips,
		FuelCost:      p.FuelCost,
		FuelVolumeGal: p.FuelVolumeGal,
		OdometerStart: p.OdometerStart,
		OdometerEnd:   p.OdometerEnd,
		Notes:         p.Notes,
	}
}

func (p tripPayload) validate() error {
	if p.ShiftID <= 0 {
		return domain.ValidationError{Field: "shift_id", Msg: "corrida precisa de um turno"}
	}
	return nil
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	trip, err := repositories.TripRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip, "miles": domain.TripMiles(trip)})
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	id, err := repositories.TripRepository{}.Create(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "corrida registrada"})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := (repositories.TripRepository{}).Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "corrida atualizada"})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := (repositories.TripRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "corrida excluída"})
}
