package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	personID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid expense transaction",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.NewFromFloat(42.50),
				Type:        TransactionTypeExpense,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: false,
		},
		{
			name: "valid income transaction at minimum value",
			transaction: Transaction{
				Description: "Interest",
				Value:       decimal.RequireFromString("0.01"),
				Type:        TransactionTypeIncome,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: false,
		},
		{
			name: "missing person ID",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.NewFromInt(10),
				Type:        TransactionTypeExpense,
				CategoryID:  categoryID,
			},
			wantErr: true,
			errMsg:  "person ID is required",
		},
		{
			name: "missing category ID",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.NewFromInt(10),
				Type:        TransactionTypeExpense,
				PersonID:    personID,
			},
			wantErr: true,
			errMsg:  "category ID is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.NewFromInt(10),
				Type:        "transfer",
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "value below minimum",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.RequireFromString("0.009"),
				Type:        TransactionTypeExpense,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: true,
			errMsg:  "transaction value must be at least 0.01",
		},
		{
			name: "zero value",
			transaction: Transaction{
				Description: "Groceries",
				Value:       decimal.Zero,
				Type:        TransactionTypeExpense,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: true,
			errMsg:  "transaction value must be at least 0.01",
		},
		{
			name: "empty description",
			transaction: Transaction{
				Value:      decimal.NewFromInt(10),
				Type:       TransactionTypeExpense,
				PersonID:   personID,
				CategoryID: categoryID,
			},
			wantErr: true,
			errMsg:  "description is required",
		},
		{
			name: "description too long",
			transaction: Transaction{
				Description: strings.Repeat("a", 401),
				Value:       decimal.NewFromInt(10),
				Type:        TransactionTypeExpense,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			wantErr: true,
			errMsg:  "description cannot exceed 400 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BeforeCreate(t *testing.T) {
	txn := &Transaction{
		Description: "Salary",
		Value:       decimal.NewFromInt(1000),
		Type:        TransactionTypeIncome,
		PersonID:    uuid.New(),
		CategoryID:  uuid.New(),
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())

	t.Run("keeps preset values", func(t *testing.T) {
		id := uuid.New()
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		preset := &Transaction{
			ID:          id,
			Description: "Salary",
			Value:       decimal.NewFromInt(1000),
			Type:        TransactionTypeIncome,
			PersonID:    uuid.New(),
			CategoryID:  uuid.New(),
			CreatedAt:   created,
		}
		require.NoError(t, preset.BeforeCreate(nil))
		assert.Equal(t, id, preset.ID)
		assert.Equal(t, created, preset.CreatedAt)
	})

	t.Run("rejects invalid transaction", func(t *testing.T) {
		invalid := &Transaction{Type: TransactionTypeIncome}
		assert.Error(t, invalid.BeforeCreate(nil))
	})
}

func TestTransaction_TypeHelpers(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome}
	expense := Transaction{Type: TransactionTypeExpense}

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.Equal(t, "transactions", income.TableName())
}
