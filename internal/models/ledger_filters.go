package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerFilters contains filtering options for ledger queries
type LedgerFilters struct {
	Status       string
	Type         string
	Category     string
	Source       string
	MerchantName string
	StartDate    *time.Time
	EndDate      *time.Time
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	Offset       int
	Limit        int
}

// Matches reports whether an entry passes every set filter. Offset and Limit are ignored.
func (f LedgerFilters) Matches(e *LedgerEntry) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.Source != "" && e.Source != f.Source {
		return false
	}
	if f.MerchantName != "" && !strings.Contains(strings.ToLower(e.MerchantName), strings.ToLower(f.MerchantName)) {
		return false
	}
	if f.StartDate != nil && e.OccurredAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.OccurredAt.After(*f.EndDate) {
		return false
	}
	if f.MinAmount != nil && e.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && e.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}
