package models

import (
	"slices"
	"strings"
)

// Purpose classifies which transaction types a category may back
type Purpose string

// TransactionType is the direction of money flow for a transaction
type TransactionType string

const (
	PurposeExpense Purpose = "expense"
	PurposeIncome  Purpose = "income"
	PurposeBoth    Purpose = "both"

	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether p is one of the known purposes
func (p Purpose) IsValid() bool {
	return slices.Contains(AllPurposes(), p)
}

// Accepts reports whether a category with this purpose may back a transaction of type t.
// PurposeBoth accepts either type.
func (p Purpose) Accepts(t TransactionType) bool {
	switch p {
	case PurposeBoth:
		return t.IsValid()
	case PurposeExpense:
		return t == TransactionTypeExpense
	case PurposeIncome:
		return t == TransactionTypeIncome
	default:
		return false
	}
}

// IsValid reports whether t is expense or income
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome:
		return true
	default:
		return false
	}
}

// ParsePurpose normalizes user input such as "Income" or " BOTH "
func ParsePurpose(s string) Purpose {
	return Purpose(strings.ToLower(strings.TrimSpace(s)))
}

// ParseTransactionType normalizes user input such as "Expense"
func ParseTransactionType(s string) TransactionType {
	return TransactionType(strings.ToLower(strings.TrimSpace(s)))
}

// AllPurposes returns every valid purpose
func AllPurposes() []Purpose {
	return []Purpose{PurposeExpense, PurposeIncome, PurposeBoth}
}
