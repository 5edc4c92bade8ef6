package services

import (
	"fmt"
	"unicode/utf8"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
)

const (
	msgPersonNotFound      = "person not found"
	msgCategoryNotFound    = "category not found"
	msgMinorsExpensesOnly  = "minors restricted to expenses"
	msgIncomeForExpense    = "category purpose mismatch: cannot use an income category for an expense transaction"
	msgExpenseForIncome    = "category purpose mismatch: cannot use an expense category for an income transaction"
	msgTransactionRecorded = "transaction created successfully"
)

// CheckPerson verifies the person exists and may record a transaction of txType.
// Minors may only record expenses.
func CheckPerson(person *models.Person, txType models.TransactionType) *apperrors.Error {
	if person == nil {
		return apperrors.NotFound(apperrors.PersonNotFound, msgPersonNotFound)
	}
	if person.IsMinor() && txType != models.TransactionTypeExpense {
		return apperrors.DomainRule(apperrors.TransactionMinorRestricted, msgMinorsExpensesOnly)
	}
	return nil
}

// CheckCategory verifies the category exists and its purpose accepts txType.
// A category with purpose both accepts either type.
func CheckCategory(category *models.Category, txType models.TransactionType) *apperrors.Error {
	if category == nil {
		return apperrors.NotFound(apperrors.CategoryNotFound, msgCategoryNotFound)
	}
	if txType == models.TransactionTypeExpense && category.Purpose == models.PurposeIncome {
		return apperrors.DomainRule(apperrors.TransactionPurposeMismatch, msgIncomeForExpense)
	}
	if txType == models.TransactionTypeIncome && category.Purpose == models.PurposeExpense {
		return apperrors.DomainRule(apperrors.TransactionPurposeMismatch, msgExpenseForIncome)
	}
	return nil
}

// CheckTransactionFields re-validates the raw request fields after the domain rules.
// The transport layer normally rejects these first.
func CheckTransactionFields(req dto.CreateTransactionRequest) *apperrors.Error {
	if !models.ParseTransactionType(req.Type).IsValid() {
		return apperrors.Validation(fmt.Sprintf("invalid transaction type %q", req.Type))
	}
	if req.Value.LessThan(models.MinTransactionValue) {
		return apperrors.Validation("value must be at least 0.01")
	}
	if req.Description == "" {
		return apperrors.Validation("description is required")
	}
	if utf8.RuneCountInString(req.Description) > models.MaxDescriptionLength {
		return apperrors.Validation("description cannot exceed 400 characters")
	}
	return nil
}
