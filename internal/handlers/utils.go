package handlers

import (
	"finance-tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam reads the :id path parameter. On failure it has already written
// the 400 response and returns ok=false.
func parseIDParam(c echo.Context, code errors.ErrorCode, details string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, SendError(c, code, errors.WithDetails(details))
	}
	return id, true, nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return true, nil
}
