package services

import (
	"strings"
	"testing"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPerson(t *testing.T) {
	adult := &models.Person{ID: uuid.New(), Name: "Ana", Age: 18}
	minor := &models.Person{ID: uuid.New(), Name: "Leo", Age: 17}

	tests := []struct {
		name     string
		person   *models.Person
		txType   models.TransactionType
		wantCode apperrors.ErrorCode
		wantKind apperrors.Kind
	}{
		{name: "missing person", person: nil, txType: models.TransactionTypeExpense, wantCode: apperrors.PersonNotFound, wantKind: apperrors.KindNotFound},
		{name: "adult income", person: adult, txType: models.TransactionTypeIncome},
		{name: "adult expense", person: adult, txType: models.TransactionTypeExpense},
		{name: "minor expense", person: minor, txType: models.TransactionTypeExpense},
		{name: "minor income", person: minor, txType: models.TransactionTypeIncome, wantCode: apperrors.TransactionMinorRestricted, wantKind: apperrors.KindDomainRule},
		{name: "minor unknown type", person: minor, txType: models.TransactionType("transfer"), wantCode: apperrors.TransactionMinorRestricted, wantKind: apperrors.KindDomainRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPerson(tt.person, tt.txType)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantKind, err.Kind)
		})
	}
}

func TestCheckCategory(t *testing.T) {
	category := func(p models.Purpose) *models.Category {
		return &models.Category{ID: uuid.New(), Description: "Food", Purpose: p}
	}

	tests := []struct {
		name     string
		category *models.Category
		txType   models.TransactionType
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{name: "missing category", category: nil, txType: models.TransactionTypeExpense, wantCode: apperrors.CategoryNotFound, wantMsg: "category not found"},
		{name: "expense on expense", category: category(models.PurposeExpense), txType: models.TransactionTypeExpense},
		{name: "income on income", category: category(models.PurposeIncome), txType: models.TransactionTypeIncome},
		{name: "expense on both", category: category(models.PurposeBoth), txType: models.TransactionTypeExpense},
		{name: "income on both", category: category(models.PurposeBoth), txType: models.TransactionTypeIncome},
		{
			name:     "expense on income",
			category: category(models.PurposeIncome),
			txType:   models.TransactionTypeExpense,
			wantCode: apperrors.TransactionPurposeMismatch,
			wantMsg:  "category purpose mismatch: cannot use an income category for an expense transaction",
		},
		{
			name:     "income on expense",
			category: category(models.PurposeExpense),
			txType:   models.TransactionTypeIncome,
			wantCode: apperrors.TransactionPurposeMismatch,
			wantMsg:  "category purpose mismatch: cannot use an expense category for an income transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCategory(tt.category, tt.txType)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestCheckTransactionFields(t *testing.T) {
	valid := dto.CreateTransactionRequest{
		Description: "Salary",
		Value:       decimal.RequireFromString("0.01"),
		Type:        "income",
		PersonID:    uuid.New(),
		CategoryID:  uuid.New(),
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateTransactionRequest)
		wantErr bool
	}{
		{name: "valid at minimum value", mutate: func(r *dto.CreateTransactionRequest) {}},
		{name: "uppercase type", mutate: func(r *dto.CreateTransactionRequest) { r.Type = "EXPENSE" }},
		{name: "unknown type", mutate: func(r *dto.CreateTransactionRequest) { r.Type = "refund" }, wantErr: true},
		{name: "zero value", mutate: func(r *dto.CreateTransactionRequest) { r.Value = decimal.Zero }, wantErr: true},
		{name: "negative value", mutate: func(r *dto.CreateTransactionRequest) { r.Value = decimal.NewFromInt(-5) }, wantErr: true},
		{name: "empty description", mutate: func(r *dto.CreateTransactionRequest) { r.Description = "" }, wantErr: true},
		{name: "description too long", mutate: func(r *dto.CreateTransactionRequest) { r.Description = strings.Repeat("a", 401) }, wantErr: true},
		{name: "description at limit", mutate: func(r *dto.CreateTransactionRequest) { r.Description = strings.Repeat("é", 400) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := CheckTransactionFields(req)
			if !tt.wantErr {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, apperrors.KindValidation, err.Kind)
			assert.Equal(t, apperrors.ValidationGeneral, err.Code)
		})
	}
}
