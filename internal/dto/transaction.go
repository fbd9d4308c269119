package dto

import (
	"sms-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// TransactionFilters contains filtering options for ledger queries
type TransactionFilters struct {
	StartDate    string `query:"start_date"`
	EndDate      string `query:"end_date"`
	Type         string `query:"type" validate:"omitempty,oneof=income expense transfer"`
	Status       string `query:"status" validate:"omitempty,oneof=confirmed needs_review rejected"`
	Category     string `query:"category" validate:"omitempty,ledger_category"`
	Source       string `query:"source" validate:"omitempty,oneof=sms notification manual"`
	MerchantName string `query:"merchant" validate:"omitempty,max=100"`
	MinAmount    string `query:"min_amount" validate:"omitempty,decimal_amount"`
	MaxAmount    string `query:"max_amount" validate:"omitempty,decimal_amount"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

// ReviewEntryRequest is a manual correction of a ledger entry. Nil fields are left as they are.
type ReviewEntryRequest struct {
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Type         *string          `json:"type,omitempty" validate:"omitempty,oneof=income expense transfer"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,ledger_category"`
	MerchantName *string          `json:"merchant_name,omitempty" validate:"omitempty,max=100"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,min=1,max=200"`
	Status       *string          `json:"status,omitempty" validate:"omitempty,oneof=confirmed rejected"`
}

// IsEmpty reports whether the request changes nothing
func (r *ReviewEntryRequest) IsEmpty() bool {
	return r.Amount == nil && r.Type == nil && r.Category == nil &&
		r.MerchantName == nil && r.Description == nil && r.Status == nil
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

// ListTransactionsResponse represents the response for listing ledger entries
type ListTransactionsResponse struct {
	Transactions []*models.LedgerEntry `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// AuditLogResponse is one page of the persisted audit trail
type AuditLogResponse struct {
	Logs       []*models.AuditLog `json:"logs"`
	Pagination PaginationInfo     `json:"pagination"`
}
