package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category management requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists every category
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} object{message=string,data=[]dto.CategoryResponse}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return SendResult(c, http.StatusOK, h.categoryService.ListCategories(c.Request().Context()))
}

// GetCategory retrieves a single category
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} object{message=string,data=dto.CategoryResponse}
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, ok, err := parseIDParam(c, errors.CategoryInvalidID, "Invalid category ID")
	if !ok {
		return err
	}

	return SendResult(c, http.StatusOK, h.categoryService.GetCategory(c.Request().Context(), id))
}

// CreateCategory registers a category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} object{message=string,data=string} "Id of the new category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return SendResult(c, http.StatusCreated, h.categoryService.CreateCategory(c.Request().Context(), req))
}

// DeleteCategory removes a category and every transaction filed under it
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} object{message=string,data=string}
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok, err := parseIDParam(c, errors.CategoryInvalidID, "Invalid category ID")
	if !ok {
		return err
	}

	return SendResult(c, http.StatusOK, h.categoryService.DeleteCategory(c.Request().Context(), id))
}
