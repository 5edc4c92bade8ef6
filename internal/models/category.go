package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxDescriptionLength = 400

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description cannot exceed 400 characters")
	ErrInvalidPurpose      = errors.New("invalid category purpose")
)

// Category groups transactions and restricts which types may reference it
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Description string    `gorm:"type:varchar(400);not null" json:"description"`
	Purpose     Purpose   `gorm:"type:varchar(20);not null" json:"purpose"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if err := validateDescription(c.Description); err != nil {
		return err
	}
	if !c.Purpose.IsValid() {
		return ErrInvalidPurpose
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

func validateDescription(description string) error {
	if description == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
