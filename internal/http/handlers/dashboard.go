package handlers

import (
	"fmt"
	"net/http"

	"flextrack/internal/http/middleware"
	"flextrack/internal/repositories"
	"flextrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the all-time counters the home screen shows.
func GetDashboard(c *gin.Context) {
	shiftCount, err := repositories.ShiftRepository{}.Count()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sums, err := repositories.TripRepository{}.Sums()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	otherExpenses, err := repositories.ExpenseRepository{}.SumAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	earnings := sums.BlockPay + sums.Tips
	net := earnings - sums.Fuel - otherExpenses

	utils.LogEvent(middleware.GetRequestID(c), "dashboard", "summary",
		fmt.Sprintf("shifts=%d trips=%d", shiftCount, sums.Count))
	c.JSON(http.StatusOK, gin.H{
		"shifts":   shiftCount,
		"trips":    sums.Count,
		"earnings": earnings,
		"tips":     sums.Tips,
		"fuel":     sums.Fuel,
		"other":    otherExpenses,
		"net":      net,
	})
}
