package repositories

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// PersonRepositoryInterface defines the contract for person repository operations.
// Add, Update and Delete only stage changes; UnitOfWork.Commit applies them.
type PersonRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	ListAll(ctx context.Context) ([]models.Person, error)
	ListWithTransactions(ctx context.Context) ([]models.Person, error)
	Add(person *models.Person)
	Update(person *models.Person)
	Delete(id uuid.UUID)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	ListWithTransactions(ctx context.Context) ([]models.Category, error)
	Add(category *models.Category)
	Update(category *models.Category)
	Delete(id uuid.UUID)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations.
// Transactions are never updated; they are removed only when their person or category is.
type TransactionRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	Add(transaction *models.Transaction)
}

// UnitOfWork groups the repositories sharing one pending change set
type UnitOfWork interface {
	Persons() PersonRepositoryInterface
	Categories() CategoryRepositoryInterface
	Transactions() TransactionRepositoryInterface
	Commit(ctx context.Context) error
}

// UnitOfWorkFactory builds a fresh UnitOfWork for each service call
type UnitOfWorkFactory func() UnitOfWork
