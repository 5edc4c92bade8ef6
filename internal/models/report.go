package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals holds the income, expense and balance of one report row
type Totals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// NewTotals sums the given transactions by type
func NewTotals(transactions []Transaction) Totals {
	totals := Totals{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for i := range transactions {
		t := &transactions[i]
		switch {
		case t.IsIncome():
			totals.TotalIncome = totals.TotalIncome.Add(t.Value)
		case t.IsExpense():
			totals.TotalExpenses = totals.TotalExpenses.Add(t.Value)
		}
	}
	totals.Balance = totals.TotalIncome.Sub(totals.TotalExpenses)
	return totals
}

// PersonTotals is a per-person report row
type PersonTotals struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Age  int       `json:"age"`
	Totals
}

// CategoryTotals is a per-category report row
type CategoryTotals struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Purpose     Purpose   `json:"purpose"`
	Totals
}

// Summary aggregates every row of a report
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
}

// Report is an ordered list of totals rows plus their overall summary
type Report[T any] struct {
	Totals  []T     `json:"financial_totals"`
	Summary Summary `json:"total_summary"`
}

// NewReport builds a report, deriving the summary from each row's totals.
// A nil rows slice yields an empty, zero-valued report.
func NewReport[T any](rows []T, totalsOf func(T) Totals) Report[T] {
	summary := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, row := range rows {
		t := totalsOf(row)
		summary.TotalIncome = summary.TotalIncome.Add(t.TotalIncome)
		summary.TotalExpenses = summary.TotalExpenses.Add(t.TotalExpenses)
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)

	if rows == nil {
		rows = []T{}
	}
	return Report[T]{Totals: rows, Summary: summary}
}
