package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]string{"k": "v"})
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeSubdomainTaken, "This subdomain is already taken")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeSubdomainTaken, resp.Error.Code)
	assert.Equal(t, "This subdomain is already taken", resp.Error.Message)
	assert.Nil(t, resp.Data)
}

func TestErrorWithDetails(t *testing.T) {
	details := map[string]string{"subdomain": "required"}
	resp := ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", details)
	require.NotNil(t, resp.Error)
	assert.Equal(t, details, resp.Error.Details)
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidSubdomain, http.StatusBadRequest},
		{ErrCodeReservedSubdomain, http.StatusBadRequest},
		{ErrCodeInvalidIcon, http.StatusBadRequest},
		{ErrCodeSubdomainTaken, http.StatusConflict},
		{ErrCodeTenantNotFound, http.StatusNotFound},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestHelperMessages(t *testing.T) {
	assert.Equal(t, "Authentication required", Unauthorized("").Error.Message)
	assert.Equal(t, "custom", Unauthorized("custom").Error.Message)
	assert.Equal(t, "Resource not found", NotFound("").Error.Message)
	assert.Equal(t, "An internal error occurred", InternalError("").Error.Message)
	assert.Equal(t, "Service temporarily unavailable", ServiceUnavailable("").Error.Message)
}
