package models

import "github.com/shopspring/decimal"

// CategorySummary aggregates confirmed ledger entries for one category
type CategorySummary struct {
	Category     string          `json:"category"`
	EntryCount   int             `json:"entry_count"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

// LedgerSummary is the per-category breakdown plus ledger-wide totals
type LedgerSummary struct {
	Categories       []CategorySummary `json:"categories"`
	TotalIncome      decimal.Decimal   `json:"total_income"`
	TotalExpense     decimal.Decimal   `json:"total_expense"`
	NetAmount        decimal.Decimal   `json:"net_amount"`
	ConfirmedCount   int               `json:"confirmed_count"`
	NeedsReviewCount int               `json:"needs_review_count"`
	RejectedCount    int               `json:"rejected_count"`
}
