package handlers

import (
	"log/slog"
	"net/http"

	"monetrix-dashboard/internal/errors"
	"monetrix-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers report failures through the helpers below:
//
//  1. SendError for client and feed errors (4xx, plus FEED_003 as 503)
//     - invalid query: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//     - no snapshot yet: SendError(c, errors.FeedSnapshotNotFound)
//     - partial bank feed: SendError(c, errors.FeedIncomplete)
//
//  2. SendValidationError for validator failures, one detail per field
//
//  3. SendDatabaseError for snapshot store failures (500, SYSTEM_002)
//
//  4. SendSystemError for other internal failures (500). Both log the
//     wrapped error and never return it to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	if errorResponse.IsServerError() {
		slog.WarnContext(c.Request().Context(), "request degraded",
			"trace_id", traceID,
			"path", c.Path(),
			"error_code", errorResponse.Error.Code)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendDatabaseError reports a store failure without exposing the driver error
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "snapshot store failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err)
	errorResponse, _ := errors.WrapDatabaseError(err, traceID)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports every invalid field at once
func SendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		errorResponse := errors.NewValidationErrorFromList([]string{err.Error()}, getTraceID(c))
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
