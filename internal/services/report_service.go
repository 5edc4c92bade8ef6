package services

import (
	"context"
	"log/slog"
	"time"

	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/result"
)

const msgReportGenerated = "report generated successfully"

const (
	scopePerson   = "person"
	scopeCategory = "category"
)

type reportService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	metrics       MetricsRecorderInterface
	financeLogger FinanceLoggerInterface
	logger        *slog.Logger
}

func NewReportService(
	newUnitOfWork repositories.UnitOfWorkFactory,
	metrics MetricsRecorderInterface,
	financeLogger FinanceLoggerInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &reportService{
		newUnitOfWork: newUnitOfWork,
		metrics:       metrics,
		financeLogger: financeLogger,
		logger:        logging.Component(logger, "reports"),
	}
}

// GetTotalsByPerson sums income and expenses for every person, including those without transactions
func (s *reportService) GetTotalsByPerson(ctx context.Context) result.Result[models.Report[models.PersonTotals]] {
	start := time.Now()

	persons, err := s.newUnitOfWork().Persons().ListWithTransactions(ctx)
	if err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "report_by_person", err)
		return result.Fail[models.Report[models.PersonTotals]](apperrors.Persistence(err))
	}

	rows := make([]models.PersonTotals, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, models.PersonTotals{
			ID:     p.ID,
			Name:   p.Name,
			Age:    p.Age,
			Totals: models.NewTotals(p.Transactions),
		})
	}

	report := models.NewReport(rows, func(r models.PersonTotals) models.Totals { return r.Totals })
	s.observe(ctx, scopePerson, len(rows), report.Summary, time.Since(start))

	return result.Ok(msgReportGenerated, report)
}

// GetTotalsByCategory sums income and expenses for every category, including unused ones
func (s *reportService) GetTotalsByCategory(ctx context.Context) result.Result[models.Report[models.CategoryTotals]] {
	start := time.Now()

	categories, err := s.newUnitOfWork().Categories().ListWithTransactions(ctx)
	if err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "report_by_category", err)
		return result.Fail[models.Report[models.CategoryTotals]](apperrors.Persistence(err))
	}

	rows := make([]models.CategoryTotals, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, models.CategoryTotals{
			ID:          c.ID,
			Description: c.Description,
			Purpose:     c.Purpose,
			Totals:      models.NewTotals(c.Transactions),
		})
	}

	report := models.NewReport(rows, func(r models.CategoryTotals) models.Totals { return r.Totals })
	s.observe(ctx, scopeCategory, len(rows), report.Summary, time.Since(start))

	return result.Ok(msgReportGenerated, report)
}

func (s *reportService) observe(ctx context.Context, scope string, rows int, summary models.Summary, duration time.Duration) {
	net, _ := summary.NetBalance.Float64()
	s.logger.DebugContext(ctx, "Report computed",
		slog.String("scope", scope),
		slog.Int("rows", rows),
		slog.Int64(logging.FieldDuration, duration.Milliseconds()),
	)

	s.metrics.IncrementCounter("report.generated", map[string]string{"scope": scope})
	s.metrics.RecordProcessingTime("report."+scope, duration)
	s.metrics.RecordGauge("report.net_balance", net, map[string]string{"scope": scope})
	s.financeLogger.LogReportGenerated(ctx, scope, rows, summary)
}
