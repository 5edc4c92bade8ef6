package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=400"`
	Value       decimal.Decimal `json:"value" validate:"required,transaction_amount"`
	Type        string          `json:"type" validate:"required,transaction_type"`
	PersonID    uuid.UUID       `json:"person_id" validate:"required"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
}

// TransactionResponse represents a transaction with its person and category labels
type TransactionResponse struct {
	ID                  uuid.UUID              `json:"id"`
	Description         string                 `json:"description"`
	Value               decimal.Decimal        `json:"value"`
	Type                models.TransactionType `json:"type"`
	PersonID            uuid.UUID              `json:"person_id"`
	PersonName          string                 `json:"person_name"`
	CategoryID          uuid.UUID              `json:"category_id"`
	CategoryDescription string                 `json:"category_description"`
	CreatedAt           time.Time              `json:"created_at"`
}

// NewTransactionResponse maps a transaction model to its response. The person and
// category labels are left empty when the associations were not loaded.
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Value:       t.Value,
		Type:        t.Type,
		PersonID:    t.PersonID,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
	}
	if t.Person != nil {
		resp.PersonName = t.Person.Name
	}
	if t.Category != nil {
		resp.CategoryDescription = t.Category.Description
	}
	return resp
}
