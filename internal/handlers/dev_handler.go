package handlers

import (
	"fmt"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSamplePersons      = 4
	maxSamplePersons          = 50
	defaultSampleTransactions = 40
	maxSampleTransactions     = 1000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.HouseholdGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.HouseholdGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// GenerateSampleData fills the store with a sample household
//
// Method: POST /api/v1/dev/sample-data
// Environment: Development only
//
// Query parameters:
//   - persons: Number of persons to create (default: 4, max: 50)
//   - count: Number of transactions to record (default: 40, max: 1000)
//
// Success Response: 200 OK
//   - message: Success message
//   - data: Counts of created persons, categories and transactions
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	persons := clamp(getIntQueryParam(c, "persons", defaultSamplePersons), 1, maxSamplePersons)
	count := clamp(getIntQueryParam(c, "count", defaultSampleTransactions), 0, maxSampleTransactions)

	summary, err := h.generator.Generate(c.Request().Context(), persons, count)
	if err != nil {
		if appErr, ok := errors.AsError(err); ok {
			return SendAppError(c, appErr)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "sample data generated successfully",
		"data":    summary,
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
