package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	intconfig "flextrack/internal/config"
	"flextrack/internal/domain"
	"flextrack/internal/domain/models"
	"flextrack/internal/http/middleware"
	"flextrack/internal/repositories"
	"flextrack/internal/utils"

	"github.com/gin-gonic/gin"
)

const defaultRideTitle = "Corrida"

type ridePayload struct {
	Title            string   `json:"title"`
	StartDT          string   `json:"start_dt"`
	EndDT            *string  `json:"end_dt"`
	HoursPlanned     *float64 `json:"hours_planned"`
	ExpectedBlockPay *float64 `json:"expected_block_pay"`
	Tips             *float64 `json:"tips"`
	FuelCost         *float64 `json:"fuel_cost"`
	OdometerStart    *float64 `json:"odometer_start"`
	OdometerEnd      *float64 `json:"odometer_end"`
	Notes            string   `json:"notes"`
}

func (p ridePayload) toModel(id int64) models.ScheduledRide {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = defaultRideTitle
	}
	startDT := strings.TrimSpace(strings.ReplaceAll(p.StartDT, "T", " "))
	if startDT == "" {
		startDT = time.Now().Format("2006-01-02 15:04:05")
	}
	var endDT *string
	if p.EndDT != nil {
		v := strings.TrimSpace(strings.ReplaceAll(*p.EndDT, "T", " "))
		if v != "" {
			endDT = &v
		}
	}
	return models.ScheduledRide{
		ID:               id,
		Title:            title,
		StartDT:          startDT,
		EndDT:            endDT,
		HoursPlanned:     p.HoursPlanned,
		ExpectedBlockPay: p.ExpectedBlockPay,
		Tips:             p.Tips,
		FuelCost:         p.FuelCost,
		OdometerStart:    p.OdometerStart,
		OdometerEnd:      p.OdometerEnd,
		Notes:            p.Notes,
	}
}

// GET /api/agenda?start=&end=
func GetScheduledRides(c *gin.Context) {
	rides, err := repositories.ScheduledRideRepository{}.ListByRange(
		utils.NormalizeDate(c.Query("start")), utils.NormalizeDate(c.Query("end")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}

// GET /api/agenda/:id
func GetScheduledRideByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	ride, err := repositories.ScheduledRideRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ride": ride, "detail": domain.ComputeRide(ride)})
}

// POST /api/agenda
func CreateScheduledRide(c *gin.Context) {
	var req ridePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := repositories.ScheduledRideRepository{}.Create(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "corrida agendada"})
}

// PUT /api/agenda/:id
func UpdateScheduledRide(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	var req ridePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := (repositories.ScheduledRideRepository{}).Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "corrida atualizada"})
}

// DELETE /api/agenda/:id
func DeleteScheduledRide(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := (repositories.ScheduledRideRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "corrida excluída"})
}

type calendarEvent struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// GetCalendarEvents feeds the calendar widget: every scheduled ride with a
// composed title (name, duration, expected pay).
func GetCalendarEvents(c *gin.Context) {
	rides, err := repositories.ScheduledRideRepository{}.ListByRange("", "")
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	loc := utils.LocaleFor(intconfig.LoadEnv().ReportLocale)
	events := make([]calendarEvent, 0, len(rides))
	for _, r := range rides {
		parts := []string{r.Title}
		d := domain.ComputeRide(r)
		if d.Hours > 0 {
			parts = append(parts, utils.FormatQty(d.Hours, loc)+"h")
		}
		if d.Pay > 0 {
			parts = append(parts, utils.FormatCurrency(d.Pay, loc))
		}
		events = append(events, calendarEvent{
			ID:    r.ID,
			Title: strings.Join(parts, " | "),
			Start: r.StartDT,
			End:   r.EndDT,
		})
	}

	utils.LogEvent(middleware.GetRequestID(c), "agenda", "calendar_events", fmt.Sprintf("events=%d", len(events)))
	c.JSON(http.StatusOK, events)
}
