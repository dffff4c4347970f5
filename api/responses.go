package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

const (
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeSearchFailed     ErrorCode = "SEARCH_FAILED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError is the standardized error response body.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code ErrorCode, message string) {
	c.JSON(status, APIError{
		Code:      code,
		Message:   message,
		RequestID: RequestID(c),
	})
}

func respondInvalidJSON(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, err.Error())
}

func respondValidationFailed(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
}

func respondSearchFailed(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
}
