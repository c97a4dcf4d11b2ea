package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emre/progtrack/internal/app/models/dto"
	"github.com/emre/progtrack/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the standard API envelope.
// Controllers delegate every service error here so status codes stay
// consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoSchedule):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No schedule has been uploaded yet"),
		})
	case errors.Is(err, apperrors.ErrEmptySchedule):
		c.JSON(422, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeEmptySchedule, "Schedule contains no valid sessions"),
		})
	case errors.Is(err, apperrors.ErrUnreadableFile):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Schedule file could not be read").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
