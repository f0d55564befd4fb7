// Package response defines the API response envelopes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the success envelope.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the error envelope.
type ErrorBody struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// FieldError is one validation violation, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBody lists every violation of a rejected payload.
type ValidationBody struct {
	Errors []FieldError `json:"errors"`
}

// Success writes the success envelope.
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Body{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error writes the error envelope. Client errors keep the "Bad request"
// status text regardless of the exact code; existing consumers parse it.
func Error(c echo.Context, statusCode int, message string) error {
	status := "Bad request"
	if statusCode >= http.StatusInternalServerError {
		status = "Internal server error"
	}

	return c.JSON(statusCode, ErrorBody{
		Status:     status,
		Message:    message,
		StatusCode: statusCode,
	})
}

// ValidationFailed writes all field violations with 422.
func ValidationFailed(c echo.Context, fieldErrors []FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationBody{Errors: fieldErrors})
}
