package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/progtrack/internal/app/models/dto"
	"github.com/emre/progtrack/internal/app/services"
	"github.com/emre/progtrack/internal/middleware"
)

// MetricsController serves computed countdown snapshots
type MetricsController struct {
	scheduleService services.ScheduleService
	metricsService  services.MetricsService
	location        *time.Location
	refreshInterval time.Duration
}

// NewMetricsController creates a new MetricsController
func NewMetricsController(scheduleService services.ScheduleService, metricsService services.MetricsService, location *time.Location, refreshInterval time.Duration) *MetricsController {
	return &MetricsController{
		scheduleService: scheduleService,
		metricsService:  metricsService,
		location:        location,
		refreshInterval: refreshInterval,
	}
}

// GetMetrics godoc
// @Summary Get countdown metrics
// @Description Computes the countdown snapshot (classes, weekends and courses left, last class day, time remaining) for the current schedule at the reference instant. Safe to poll at any rate.
// @Tags metrics
// @Produce json
// @Param at query string false "Reference instant (RFC3339, defaults to now)"
// @Success 200 {object} dto.APIResponse{data=dto.MetricsResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No schedule uploaded"
// @Router /metrics [get]
func (c *MetricsController) GetMetrics(ctx *gin.Context) {
	at, ok := parseReferenceInstant(ctx, c.location)
	if !ok {
		return
	}

	schedule, err := c.scheduleService.Current()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	snapshot, err := c.metricsService.Compute(schedule, at)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMetricsResponse(schedule.ID.String(), at, snapshot, c.refreshInterval)))
}
