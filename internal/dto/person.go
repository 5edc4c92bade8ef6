package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// CreatePersonRequest represents the request payload for registering a person
type CreatePersonRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Age  *int   `json:"age" validate:"required,min=0"`
}

// UpdatePersonRequest represents the request payload for updating a person
type UpdatePersonRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Age  *int   `json:"age" validate:"required,min=0"`
}

// PersonResponse represents a person in API responses
type PersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPersonResponse maps a person model to its response
func NewPersonResponse(p *models.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
