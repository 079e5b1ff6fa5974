package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "flextrack/internal/config"
	h "flextrack/internal/http/handlers"
	"flextrack/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowCredentials = false
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("aviso: falha ao configurar trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		private := api.Group("")
		private.Use(middleware.AuthRequired())
		{
			shifts := private.Group("/shifts")
			shifts.GET("", h.GetShifts)
			shifts.GET("/:id", h.GetShiftByID)
			shifts.POST("", h.CreateShift)
			shifts.PUT("/:id", h.UpdateShift)
			shifts.DELETE("/:id", h.DeleteShift)

			trips := private.Group("/trips")
			trips.GET("/:id", h.GetTripByID)
			trips.POST("", h.CreateTrip)
			trips.PUT("/:id", h.UpdateTrip)
			trips.DELETE("/:id", h.DeleteTrip)

			expenses := private.Group("/expenses")
			expenses.GET("", h.GetExpenses)
			expenses.POST("", h.CreateExpense)
			expenses.PUT("/:id", h.UpdateExpense)
			expenses.DELETE("/:id", h.DeleteExpense)

			agenda := private.Group("/agenda")
			agenda.GET("", h.GetScheduledRides)
			agenda.GET("/:id", h.GetScheduledRideByID)
			agenda.POST("", h.CreateScheduledRide)
			agenda.PUT("/:id", h.UpdateScheduledRide)
			agenda.DELETE("/:id", h.DeleteScheduledRide)

			private.GET("/calendar/events", h.GetCalendarEvents)
			private.GET("/dashboard", h.GetDashboard)

			reports := private.Group("/reports")
			reports.GET("", h.GetShiftReport)
			reports.GET("/csv", h.GetShiftReportCSV)
			reports.GET("/pdf", h.GetShiftReportPDF)
			reports.GET("/xlsx", h.GetShiftReportXLSX)
			reports.GET("/agenda", h.GetScheduleReport)
			reports.GET("/agenda/csv", h.GetScheduleReportCSV)
			reports.GET("/agenda/pdf", h.GetScheduleReportPDF)
			reports.GET("/agenda/xlsx", h.GetScheduleReportXLSX)
		}
	}

	return r
}
