package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidValue           = errors.New("transaction value must be at least 0.01")
	ErrPersonIDRequired       = errors.New("person ID is required")
	ErrCategoryIDRequired     = errors.New("category ID is required")
)

// MinTransactionValue is the smallest value a transaction may carry
var MinTransactionValue = decimal.RequireFromString("0.01")

// Transaction is a single income or expense entry. It is never modified after creation.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:varchar(400);not null" json:"description"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	Type        TransactionType `gorm:"column:transaction_type;type:varchar(20);not null" json:"type"`
	PersonID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"person_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Person   *Person   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// Set timestamp if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.PersonID == uuid.Nil {
		return ErrPersonIDRequired
	}
	if t.CategoryID == uuid.Nil {
		return ErrCategoryIDRequired
	}
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if t.Value.LessThan(MinTransactionValue) {
		return ErrInvalidValue
	}
	return validateDescription(t.Description)
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
