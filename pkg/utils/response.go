package utils

import (
	"encoding/json"
	"net/http"

	"lightlock/pkg/logger"
)

const (
	// Request Error Codes
	ErrRequestInvalid           = "request/invalid_parameters"
	ErrRequestBadRequest        = "request/bad_request"
	ErrRequestNotFound          = "request/not_found"
	ErrRequestRateLimitExceeded = "request/rate_limit_exceeded"
	ErrRequestForbidden         = "request/forbidden"
	ErrRequestBodyTooLarge      = "request/body_too_large"

	// Auth Error Codes
	ErrAuthRequired         = "auth/authentication_required"
	ErrAuthValidationFailed = "auth/validation_failed"
	ErrAuthInvalid          = "auth/invalid_credentials"
	ErrAuthRateLimitExceed  = "auth/rate_limit_exceeded"

	// Server Error Codes
	ErrServerInternal = "server/internal_error"
	ErrServerTimeout  = "server/timeout"

	// Resource Error Codes
	ErrResourceNotFound = "resource/not_found"

	// Others
	ErrImageGenerationFailed = "image/generation_failed"
)

type APIError struct {
	Code    string `json:"code"`    // e.g., "auth/invalid_credentials"
	Message string `json:"message"` // User-friendly message
	Status  int    `json:"status"`  // HTTP Status Code
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// WriteError sends a JSON formatted error response
func WriteError(w http.ResponseWriter, status int, code string, message string) {
	if status >= http.StatusInternalServerError {
		logger.LogError("%s: %s", code, message)
	}
	WriteJSON(w, status, APIError{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.LogWarn("failed to encode response: %v", err)
	}
}
