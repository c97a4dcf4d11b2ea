package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/progtrack/internal/app/models/dto"
	"github.com/emre/progtrack/internal/app/services"
	"github.com/emre/progtrack/internal/middleware"
)

// ScheduleController handles schedule upload and session list operations
type ScheduleController struct {
	scheduleService services.ScheduleService
	metricsService  services.MetricsService
	location        *time.Location
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService, metricsService services.MetricsService, location *time.Location) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		metricsService:  metricsService,
		location:        location,
	}
}

// UploadSchedule godoc
// @Summary Upload a class schedule
// @Description Replaces the current schedule with an uploaded CSV (three positional columns: date, morning label, afternoon label). Rows whose date is not strict YYYY-MM-DD are dropped and counted.
// @Tags schedule
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Schedule CSV"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleUploadResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 422 {object} dto.APIResponse{error=dto.ErrorDetail} "No valid sessions in the file"
// @Router /schedule [post]
func (c *ScheduleController) UploadSchedule(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file").WithField("file"),
		})
		return
	}

	opened, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Uploaded file could not be opened"),
		})
		return
	}
	defer opened.Close()

	schedule, err := c.scheduleService.LoadCSV(opened)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewScheduleUploadResponse(schedule)))
}

// GetUpcomingSessions godoc
// @Summary List upcoming sessions
// @Description Lists sessions on or after the reference instant, ordered by date.
// @Tags schedule
// @Produce json
// @Param at query string false "Reference instant (RFC3339, defaults to now)"
// @Success 200 {object} dto.APIResponse{data=dto.SessionListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No schedule uploaded"
// @Router /schedule/upcoming [get]
func (c *ScheduleController) GetUpcomingSessions(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSessionListResponse(schedule.ID.String(), snapshot.Upcoming)))
}

// GetWeekendSessions godoc
// @Summary List weekend-counted sessions
// @Description Lists upcoming sessions that contribute to the weekends metric, after the exclusion window is applied.
// @Tags schedule
// @Produce json
// @Param at query string false "Reference instant (RFC3339, defaults to now)"
// @Success 200 {object} dto.APIResponse{data=dto.SessionListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No schedule uploaded"
// @Router /schedule/weekends [get]
func (c *ScheduleController) GetWeekendSessions(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSessionListResponse(schedule.ID.String(), snapshot.WeekendSessions)))
}

// parseReferenceInstant resolves the optional "at" query parameter. A missing
// value means now in the program zone; a malformed value ends the request
// with a validation error.
func parseReferenceInstant(ctx *gin.Context, location *time.Location) (time.Time, bool) {
	raw := ctx.Query("at")
	if raw == "" {
		return time.Now().In(location), true
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Reference instant must be RFC3339").WithField("at"),
		})
		return time.Time{}, false
	}
	return at.In(location), true
}
