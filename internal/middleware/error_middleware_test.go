package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"enrollment not found", apperrors.ErrEnrollmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate enrollment", apperrors.ErrDuplicateEnrollment, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"upstream unavailable", apperrors.ErrUpstreamUnavailable, http.StatusBadGateway, dto.ErrorCodeExternalServiceError},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
		{
			// Wrapped errors map the same as their sentinels
			"wrapped user not found",
			fmt.Errorf("looking up user 42: %w", apperrors.ErrUserNotFound),
			http.StatusNotFound,
			dto.ErrorCodeResourceNotFound,
		},
		{
			"wrapped upstream failure",
			fmt.Errorf("%w: connection refused", apperrors.ErrUpstreamUnavailable),
			http.StatusBadGateway,
			dto.ErrorCodeExternalServiceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}
