package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// household wires the real services over an in-memory SQLite store
type household struct {
	db           *database.DB
	persons      PersonServiceInterface
	categories   CategoryServiceInterface
	transactions TransactionServiceInterface
	reports      ReportServiceInterface
}

func newHousehold(t *testing.T) *household {
	t.Helper()

	db := database.SetupTestDB(t)
	factory := repositories.NewUnitOfWorkFactory(db.DB)
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	financeLogger := NewFinanceLogger(logger)

	return &household{
		db:           db,
		persons:      NewPersonService(factory, metrics, financeLogger),
		categories:   NewCategoryService(factory, metrics, financeLogger),
		transactions: NewTransactionService(factory, metrics, financeLogger, logger),
		reports:      NewReportService(factory, metrics, financeLogger, logger),
	}
}

func (h *household) person(t *testing.T, name string, age int) uuid.UUID {
	t.Helper()
	res := h.persons.CreatePerson(context.Background(), dto.CreatePersonRequest{Name: name, Age: &age})
	require.True(t, res.IsOk(), res.Message())
	return res.Data()
}

func (h *household) category(t *testing.T, description string, purpose models.Purpose) uuid.UUID {
	t.Helper()
	res := h.categories.CreateCategory(context.Background(), dto.CreateCategoryRequest{Description: description, Purpose: string(purpose)})
	require.True(t, res.IsOk(), res.Message())
	return res.Data()
}

func TestRecordTransaction_FailedCommitLeavesNoRows(t *testing.T) {
	h := newHousehold(t)
	ctx := context.Background()
	personID := h.person(t, "Maria", 40)
	categoryID := h.category(t, "Groceries", models.PurposeExpense)

	diskFull := errors.New("disk full")
	err := h.db.Callback().Create().Before("gorm:create").Register("test:fail_transactions", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "transactions" {
			_ = tx.AddError(diskFull)
		}
	})
	require.NoError(t, err)

	res := h.transactions.RecordTransaction(ctx, dto.CreateTransactionRequest{
		Description: "Weekly groceries",
		Value:       decimal.RequireFromString("87.40"),
		Type:        string(models.TransactionTypeExpense),
		PersonID:    personID,
		CategoryID:  categoryID,
	})

	require.False(t, res.IsOk())
	assert.Equal(t, apperrors.KindPersistence, res.Err().Kind)
	assert.ErrorIs(t, res.Err(), diskFull)
	assert.Equal(t, "Database operation failed", res.Message())
	assert.Equal(t, uuid.Nil, res.Data())

	listed := h.transactions.ListTransactions(ctx)
	require.True(t, listed.IsOk())
	assert.Empty(t, listed.Data())

	var count int64
	require.NoError(t, h.db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)

	// the person and category committed earlier are untouched
	assert.True(t, h.persons.GetPerson(ctx, personID).IsOk())
	assert.True(t, h.categories.GetCategory(ctx, categoryID).IsOk())
}

func TestReports_SummaryIndependentOfInsertionOrder(t *testing.T) {
	type entry struct {
		person   int
		category int
		txType   models.TransactionType
		value    string
	}
	entries := []entry{
		{0, 0, models.TransactionTypeIncome, "200.10"},
		{0, 1, models.TransactionTypeExpense, "55.75"},
		{1, 2, models.TransactionTypeIncome, "100.00"},
		{1, 1, models.TransactionTypeExpense, "100.00"},
	}
	orders := map[string][]int{
		"as listed":   {0, 1, 2, 3},
		"reversed":    {3, 2, 1, 0},
		"interleaved": {2, 0, 3, 1},
	}

	wantIncome := decimal.RequireFromString("300.10")
	wantExpenses := decimal.RequireFromString("155.75")
	wantNet := decimal.RequireFromString("144.35")

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			h := newHousehold(t)
			ctx := context.Background()

			persons := []uuid.UUID{h.person(t, "Maria", 40), h.person(t, "Joao", 35)}
			categories := []uuid.UUID{
				h.category(t, "Salary", models.PurposeIncome),
				h.category(t, "Groceries", models.PurposeExpense),
				h.category(t, "Gifts", models.PurposeBoth),
			}

			for _, i := range order {
				e := entries[i]
				res := h.transactions.RecordTransaction(ctx, dto.CreateTransactionRequest{
					Description: "entry",
					Value:       decimal.RequireFromString(e.value),
					Type:        string(e.txType),
					PersonID:    persons[e.person],
					CategoryID:  categories[e.category],
				})
				require.True(t, res.IsOk(), res.Message())
			}

			byPerson := h.reports.GetTotalsByPerson(ctx)
			require.True(t, byPerson.IsOk())
			byCategory := h.reports.GetTotalsByCategory(ctx)
			require.True(t, byCategory.IsOk())

			for _, summary := range []models.Summary{byPerson.Data().Summary, byCategory.Data().Summary} {
				assert.True(t, wantIncome.Equal(summary.TotalIncome), "income %s", summary.TotalIncome)
				assert.True(t, wantExpenses.Equal(summary.TotalExpenses), "expenses %s", summary.TotalExpenses)
				assert.True(t, wantNet.Equal(summary.NetBalance), "net %s", summary.NetBalance)
			}

			balances := map[uuid.UUID]decimal.Decimal{}
			for _, row := range byPerson.Data().Totals {
				balances[row.ID] = row.Balance
			}
			assert.True(t, decimal.RequireFromString("144.35").Equal(balances[persons[0]]))
			assert.True(t, balances[persons[1]].IsZero())
		})
	}
}
