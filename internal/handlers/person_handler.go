package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// PersonHandler handles person management requests
type PersonHandler struct {
	personService services.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService services.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// ListPersons lists every registered person
// @Summary List persons
// @Tags Persons
// @Produce json
// @Success 200 {object} object{message=string,data=[]dto.PersonResponse}
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /persons [get]
func (h *PersonHandler) ListPersons(c echo.Context) error {
	return SendResult(c, http.StatusOK, h.personService.ListPersons(c.Request().Context()))
}

// GetPerson retrieves a single person
// @Summary Get person
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} object{message=string,data=dto.PersonResponse}
// @Failure 400 {object} errors.ErrorResponse "PERSON_002 - Invalid person ID"
// @Failure 404 {object} errors.ErrorResponse "PERSON_001 - Person not found"
// @Router /persons/{id} [get]
func (h *PersonHandler) GetPerson(c echo.Context) error {
	id, ok, err := parseIDParam(c, errors.PersonInvalidID, "Invalid person ID")
	if !ok {
		return err
	}

	return SendResult(c, http.StatusOK, h.personService.GetPerson(c.Request().Context(), id))
}

// CreatePerson registers a person
// @Summary Create person
// @Tags Persons
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} object{message=string,data=string} "Id of the new person"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /persons [post]
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var req dto.CreatePersonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return SendResult(c, http.StatusCreated, h.personService.CreatePerson(c.Request().Context(), req))
}

// UpdatePerson replaces a person's name and age
// @Summary Update person
// @Tags Persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param request body dto.UpdatePersonRequest true "Person details"
// @Success 200 {object} object{message=string,data=dto.PersonResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "PERSON_001 - Person not found"
// @Router /persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	id, ok, err := parseIDParam(c, errors.PersonInvalidID, "Invalid person ID")
	if !ok {
		return err
	}

	var req dto.UpdatePersonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return SendResult(c, http.StatusOK, h.personService.UpdatePerson(c.Request().Context(), id, req))
}

// DeletePerson removes a person and all of their transactions
// @Summary Delete person
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} object{message=string,data=string}
// @Failure 404 {object} errors.ErrorResponse "PERSON_001 - Person not found"
// @Router /persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	id, ok, err := parseIDParam(c, errors.PersonInvalidID, "Invalid person ID")
	if !ok {
		return err
	}

	return SendResult(c, http.StatusOK, h.personService.DeletePerson(c.Request().Context(), id))
}
