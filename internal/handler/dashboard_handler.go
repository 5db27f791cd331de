package handler

import (
	"errors"
	"log"
	"net/http"

	"finanzas_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles stats, chart data and report requests
type DashboardHandler struct {
	service service.StatsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s service.StatsService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		h.renderError(c, "Failed to retrieve dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetChartData(c *gin.Context) {
	data, err := h.service.ChartData(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		h.renderError(c, "Failed to retrieve chart data", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) GetReport(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		h.renderError(c, "Failed to generate report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// renderError maps an unrecognized period keyword to 400 with the message
// listing the valid keywords; anything else is a storage failure.
func (h *DashboardHandler) renderError(c *gin.Context, msg string, err error) {
	var invalidPeriod *service.InvalidPeriodError
	if errors.As(err, &invalidPeriod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidPeriod.Error()})
		return
	}
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// RegisterDashboardRoutes registers dashboard and report routes
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats/:periodo", h.GetDashboardStats)
	rg.GET("/dashboard/chart-data/:periodo", h.GetChartData)
	rg.GET("/reports/:periodo", h.GetReport)
}
