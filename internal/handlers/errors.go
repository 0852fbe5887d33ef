package handlers

import (
	"errors"
	"strings"

	"barbershop-finance-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

// isValidationError checks if an error is a validation error
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repositories.ErrValidation) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "validation") ||
		strings.Contains(errMsg, "required") ||
		strings.Contains(errMsg, "cannot be nil")
}
