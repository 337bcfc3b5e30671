package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/smd-system/ai-service/internal/ocr"
	"github.com/smd-system/ai-service/internal/summarizer"
	"github.com/smd-system/ai-service/internal/task"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound

	// Capacity and availability errors
	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, task.ErrQueueClosed),
		errors.Is(err, ocr.ErrEngineNotAvailable):
		return http.StatusServiceUnavailable

	// Bad request errors
	case errors.Is(err, ocr.ErrEmptyFile),
		errors.Is(err, summarizer.ErrEmptyText):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, task.ErrQueueFull):
		return "Task queue is full, try again later"

	case errors.Is(err, task.ErrQueueClosed):
		return "Service is shutting down"

	case errors.Is(err, ocr.ErrEngineNotAvailable):
		return "OCR engine is not available"

	case errors.Is(err, ocr.ErrEmptyFile):
		return "File data is empty"

	case errors.Is(err, summarizer.ErrEmptyText):
		return "Text content is empty"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'SummaryRequest.MaxLength' Error:Field
		// validation for 'MaxLength' failed on the 'gt' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "url":
		return "invalid URL format"
	case "base64":
		return "invalid base64 encoding"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt", "gte":
		return "value out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
