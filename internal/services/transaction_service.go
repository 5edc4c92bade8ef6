package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/result"

	"github.com/google/uuid"
)

const msgTransactionsListed = "transactions listed successfully"

type transactionService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	metrics       MetricsRecorderInterface
	financeLogger FinanceLoggerInterface
	logger        *slog.Logger
}

func NewTransactionService(
	newUnitOfWork repositories.UnitOfWorkFactory,
	metrics MetricsRecorderInterface,
	financeLogger FinanceLoggerInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		newUnitOfWork: newUnitOfWork,
		metrics:       metrics,
		financeLogger: financeLogger,
		logger:        logging.Component(logger, "transactions"),
	}
}

// RecordTransaction validates req against the person and category rules and
// persists it. The person is checked before the category is looked up.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) result.Result[uuid.UUID] {
	start := time.Now()
	txType := models.ParseTransactionType(req.Type)
	uow := s.newUnitOfWork()

	person, err := uow.Persons().FindByID(ctx, req.PersonID)
	if err != nil && !errors.Is(err, repositories.ErrPersonNotFound) {
		return s.reject(ctx, req, s.persistenceFailure(ctx, "find_person", err))
	}
	if appErr := CheckPerson(person, txType); appErr != nil {
		return s.reject(ctx, req, appErr)
	}

	category, err := uow.Categories().FindByID(ctx, req.CategoryID)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return s.reject(ctx, req, s.persistenceFailure(ctx, "find_category", err))
	}
	if appErr := CheckCategory(category, txType); appErr != nil {
		return s.reject(ctx, req, appErr)
	}

	if appErr := CheckTransactionFields(req); appErr != nil {
		return s.reject(ctx, req, appErr)
	}
	s.logger.DebugContext(ctx, "Transaction rules passed",
		slog.String("type", string(txType)),
		slog.Bool("person_minor", person.IsMinor()),
		slog.String("category_purpose", string(category.Purpose)),
	)

	transaction := &models.Transaction{
		ID:          uuid.New(),
		Description: req.Description,
		Value:       req.Value,
		Type:        txType,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	}
	uow.Transactions().Add(transaction)

	if err := uow.Commit(ctx); err != nil {
		return s.reject(ctx, req, s.persistenceFailure(ctx, "commit_transaction", err))
	}

	duration := time.Since(start)
	s.logger.DebugContext(ctx, "Transaction committed",
		slog.String("transaction_id", transaction.ID.String()),
		slog.Int64(logging.FieldDuration, duration.Milliseconds()),
	)
	s.metrics.IncrementCounter("transaction.recorded", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("transaction.recording", duration)
	s.financeLogger.LogTransactionRecorded(ctx, transaction, duration.Milliseconds())

	return result.Ok(msgTransactionRecorded, transaction.ID)
}

// ListTransactions returns every transaction with its person name and category description
func (s *transactionService) ListTransactions(ctx context.Context) result.Result[[]dto.TransactionResponse] {
	transactions, err := s.newUnitOfWork().Transactions().ListAll(ctx)
	if err != nil {
		return result.Fail[[]dto.TransactionResponse](s.persistenceFailure(ctx, "list_transactions", err))
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.NewTransactionResponse(&transactions[i]))
	}

	return result.Ok(msgTransactionsListed, responses)
}

func (s *transactionService) reject(ctx context.Context, req dto.CreateTransactionRequest, appErr *apperrors.Error) result.Result[uuid.UUID] {
	s.logger.DebugContext(ctx, "Transaction rejected",
		slog.String("code", string(appErr.Code)),
		slog.String("kind", appErr.Kind.String()),
		slog.String("person_id", req.PersonID.String()),
		slog.String("category_id", req.CategoryID.String()),
	)
	s.metrics.IncrementCounter("transaction.recorded", map[string]string{"status": "rejected"})
	s.metrics.IncrementCounter("transaction.rejected", map[string]string{"reason": string(appErr.Code)})
	s.financeLogger.LogTransactionRejected(ctx, req.PersonID, req.CategoryID, string(appErr.Code), appErr.Message)

	return result.Fail[uuid.UUID](appErr)
}

func (s *transactionService) persistenceFailure(ctx context.Context, operation string, err error) *apperrors.Error {
	s.financeLogger.LogPersistenceFailure(ctx, operation, err)
	return apperrors.Persistence(err)
}
