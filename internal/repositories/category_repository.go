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

var ErrCategoryNotFound = errors.New("category not found")

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db    *gorm.DB
	stage func(operation)
}

// FindByID retrieves a category by ID
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) ListWithTransactions(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		Order("created_at ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories with transactions: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Add(category *models.Category) {
	r.stage(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
}

func (r *categoryRepository) Update(category *models.Category) {
	r.stage(func(tx *gorm.DB) error {
		result := tx.Model(category).Updates(map[string]interface{}{
			"description": category.Description,
			"purpose":     category.Purpose,
			"updated_at":  time.Now().UTC(),
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// Delete stages removal of the category together with its transactions
func (r *categoryRepository) Delete(id uuid.UUID) {
	r.stage(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete category transactions: %w", err)
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
