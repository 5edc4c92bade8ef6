package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Description string `json:"description" validate:"required,min=1,max=400"`
	Purpose     string `json:"purpose" validate:"required,purpose"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	Purpose     models.Purpose `json:"purpose"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewCategoryResponse maps a category model to its response
func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Description: c.Description,
		Purpose:     c.Purpose,
		CreatedAt:   c.CreatedAt,
	}
}
