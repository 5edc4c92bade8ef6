package handlers

import (
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/result"

	"github.com/labstack/echo/v4"
)

// Handlers answer with one of two shapes:
//
// 1. SendResult - for every service call. A successful result becomes
//    {"message": ..., "data": ...}; a failed one is mapped through its
//    error code by SendAppError.
//
// 2. SendError / SendSystemError - for failures detected in the handler
//    itself (unparseable ids, bind and validator errors, health checks).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

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
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendAppError maps a tagged service error to its HTTP status by error code
func SendAppError(c echo.Context, err *errors.Error) error {
	errorResponse := errors.FromError(err, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendResult writes res with status on success, or its mapped error otherwise
func SendResult[T any](c echo.Context, status int, res result.Result[T]) error {
	if !res.IsOk() {
		return SendAppError(c, res.Err())
	}

	body := res.Payload()
	body["message"] = res.Message()
	return c.JSON(status, body)
}
