package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPersonNotFound = errors.New("person not found")

// personRepository implements PersonRepositoryInterface
type personRepository struct {
	db    *gorm.DB
	stage func(operation)
}

// FindByID retrieves a person by ID
func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

// ListAll retrieves every person in creation order
func (r *personRepository) ListAll(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

// ListWithTransactions retrieves every person with their transactions loaded
func (r *personRepository) ListWithTransactions(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		Order("created_at ASC, id ASC").
		Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("failed to list persons with transactions: %w", err)
	}
	return persons, nil
}

func (r *personRepository) Add(person *models.Person) {
	r.stage(func(tx *gorm.DB) error {
		if err := tx.Create(person).Error; err != nil {
			return fmt.Errorf("failed to create person: %w", err)
		}
		return nil
	})
}

func (r *personRepository) Update(person *models.Person) {
	r.stage(func(tx *gorm.DB) error {
		result := tx.Model(person).Updates(map[string]interface{}{
			"name":       person.Name,
			"age":        person.Age,
			"updated_at": time.Now().UTC(),
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update person: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPersonNotFound
		}
		return nil
	})
}

// Delete stages removal of the person together with their transactions
func (r *personRepository) Delete(id uuid.UUID) {
	r.stage(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete person transactions: %w", err)
		}

		result := tx.Delete(&models.Person{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete person: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPersonNotFound
		}
		return nil
	})
}
