package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db    *gorm.DB
	stage func(operation)
}

// FindByID retrieves a transaction by ID with its person and category
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Category").
		First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// ListAll retrieves every transaction in creation order with person and category loaded
func (r *transactionRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Category").
		Order("created_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Add(transaction *models.Transaction) {
	r.stage(func(tx *gorm.DB) error {
		if err := tx.Omit("Person", "Category").Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}
