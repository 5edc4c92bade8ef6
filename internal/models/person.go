package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// AdultAge is the minimum age allowed to record income transactions
	AdultAge = 18

	MaxPersonNameLength = 200
)

var (
	ErrPersonNameRequired = errors.New("person name is required")
	ErrPersonNameTooLong  = errors.New("person name cannot exceed 200 characters")
	ErrInvalidAge         = errors.New("age cannot be negative")
)

// Person is someone whose income and expenses are tracked
type Person struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Person
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for Person
func (p *Person) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the person fields
func (p *Person) Validate() error {
	if p.Name == "" {
		return ErrPersonNameRequired
	}
	if utf8.RuneCountInString(p.Name) > MaxPersonNameLength {
		return ErrPersonNameTooLong
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// IsMinor returns true when the person is younger than AdultAge
func (p *Person) IsMinor() bool {
	return p.Age < AdultAge
}

// TableName returns the table name for Person
func (p *Person) TableName() string {
	return "persons"
}
