package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all API routes on the router
func RegisterRoutes(router *gin.Engine, finance *FinanceHandler, report *ReportHandler, schedule *ScheduleHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   "1.0.0",
		})
	})

	v1 := router.Group("/api/v1")
	{
		barbers := v1.Group("/barbers")
		{
			barbers.POST("", finance.CreateBarber)
			barbers.GET("", finance.ListBarbers)
		}

		services := v1.Group("/services")
		{
			services.POST("", finance.CreateService)
			services.GET("", finance.ListServices)
		}

		v1.POST("/transactions", finance.CreateTransaction)
		v1.POST("/expenses", finance.CreateExpense)

		v1.GET("/report", report.GetReport)
		v1.GET("/report/export", report.ExportCSV)

		v1.POST("/clients", schedule.CreateClient)
		v1.POST("/appointments", schedule.CreateAppointment)
		v1.GET("/appointments", schedule.ListAppointments)
	}
}
