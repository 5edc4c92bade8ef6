package services

import (
	"context"
	"log/slog"
	"time"

	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

type FinanceLogger struct {
	logger *slog.Logger
}

func NewFinanceLogger(logger *slog.Logger) FinanceLoggerInterface {
	return &FinanceLogger{
		logger: logging.Component(logger, "finance"),
	}
}

func (fl *FinanceLogger) LogTransactionRecorded(ctx context.Context, transaction *models.Transaction, durationMs int64) {
	fl.logger.InfoContext(ctx, "transaction recorded",
		slog.String(logging.FieldEventType, "transaction_recorded"),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("person_id", transaction.PersonID.String()),
		slog.String("category_id", transaction.CategoryID.String()),
		slog.String("type", string(transaction.Type)),
		slog.String("value", transaction.Value.StringFixed(2)),
		slog.Int64(logging.FieldDuration, durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldTraceID, logging.TraceID(ctx)),
	)
}

func (fl *FinanceLogger) LogTransactionRejected(ctx context.Context, personID, categoryID uuid.UUID, code string, reason string) {
	fl.logger.WarnContext(ctx, "transaction rejected",
		slog.String(logging.FieldEventType, "transaction_rejected"),
		slog.String("person_id", personID.String()),
		slog.String("category_id", categoryID.String()),
		slog.String("code", code),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldTraceID, logging.TraceID(ctx)),
	)
}

func (fl *FinanceLogger) LogReportGenerated(ctx context.Context, scope string, rows int, summary models.Summary) {
	fl.logger.InfoContext(ctx, "report generated",
		slog.String(logging.FieldEventType, "report_generated"),
		slog.String("scope", scope),
		slog.Int("rows", rows),
		slog.String("total_income", summary.TotalIncome.StringFixed(2)),
		slog.String("total_expenses", summary.TotalExpenses.StringFixed(2)),
		slog.String("net_balance", summary.NetBalance.StringFixed(2)),
		slog.String(logging.FieldTraceID, logging.TraceID(ctx)),
	)
}

func (fl *FinanceLogger) LogEntityCreated(ctx context.Context, entity string, id uuid.UUID) {
	fl.logEntity(ctx, "entity created", "entity_created", entity, id)
}

func (fl *FinanceLogger) LogEntityUpdated(ctx context.Context, entity string, id uuid.UUID) {
	fl.logEntity(ctx, "entity updated", "entity_updated", entity, id)
}

// LogEntityDeleted records removal of a person or category; their transactions go with them
func (fl *FinanceLogger) LogEntityDeleted(ctx context.Context, entity string, id uuid.UUID) {
	fl.logEntity(ctx, "entity deleted", "entity_deleted", entity, id)
}

func (fl *FinanceLogger) LogPersistenceFailure(ctx context.Context, operation string, err error) {
	fl.logger.ErrorContext(ctx, "persistence failure",
		slog.String(logging.FieldEventType, "persistence_failure"),
		slog.String("operation", operation),
		slog.String(logging.FieldError, err.Error()),
		slog.String(logging.FieldTraceID, logging.TraceID(ctx)),
	)
}

func (fl *FinanceLogger) logEntity(ctx context.Context, msg, eventType, entity string, id uuid.UUID) {
	fl.logger.InfoContext(ctx, msg,
		slog.String(logging.FieldEventType, eventType),
		slog.String("entity", entity),
		slog.String("entity_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldTraceID, logging.TraceID(ctx)),
	)
}
