package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/result"

	"github.com/google/uuid"
)

// TransactionServiceInterface records and lists transactions
type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) result.Result[uuid.UUID]
	ListTransactions(ctx context.Context) result.Result[[]dto.TransactionResponse]
}

// ReportServiceInterface produces per-person and per-category totals
type ReportServiceInterface interface {
	GetTotalsByPerson(ctx context.Context) result.Result[models.Report[models.PersonTotals]]
	GetTotalsByCategory(ctx context.Context) result.Result[models.Report[models.CategoryTotals]]
}

// PersonServiceInterface defines person management operations
type PersonServiceInterface interface {
	ListPersons(ctx context.Context) result.Result[[]dto.PersonResponse]
	GetPerson(ctx context.Context, id uuid.UUID) result.Result[dto.PersonResponse]
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) result.Result[uuid.UUID]
	UpdatePerson(ctx context.Context, id uuid.UUID, req dto.UpdatePersonRequest) result.Result[dto.PersonResponse]
	DeletePerson(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID]
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) result.Result[[]dto.CategoryResponse]
	GetCategory(ctx context.Context, id uuid.UUID) result.Result[dto.CategoryResponse]
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) result.Result[uuid.UUID]
	DeleteCategory(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID]
}

// HouseholdGeneratorInterface fills the store with sample data in development
type HouseholdGeneratorInterface interface {
	Plan(personCount, transactionCount int) dto.HouseholdPlan
	Generate(ctx context.Context, personCount, transactionCount int) (dto.HouseholdSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type FinanceLoggerInterface interface {
	LogTransactionRecorded(ctx context.Context, transaction *models.Transaction, durationMs int64)
	LogTransactionRejected(ctx context.Context, personID, categoryID uuid.UUID, code string, reason string)
	LogReportGenerated(ctx context.Context, scope string, rows int, summary models.Summary)
	LogEntityCreated(ctx context.Context, entity string, id uuid.UUID)
	LogEntityUpdated(ctx context.Context, entity string, id uuid.UUID)
	LogEntityDeleted(ctx context.Context, entity string, id uuid.UUID)
	LogPersistenceFailure(ctx context.Context, operation string, err error)
}
