package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
	"github.com/cdjacome2/microcampus/internal/pkg/logger"
)

// HandleAPIError maps typed operation outcomes to HTTP status and body. Every
// controller funnels service errors through here so the mapping stays in one
// place and nothing escapes as an unstructured failure.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"))

	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"))

	case errors.Is(err, apperrors.ErrDuplicateEnrollment):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "User is already enrolled in this course"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"))

	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		respondError(c, 502, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Error communicating with the user service"))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
