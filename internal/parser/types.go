package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement detected in a message.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// CategoryOther is reported when no category keyword matches.
const CategoryOther = "Other"

// Confidence levels as presented to users reviewing parsed messages.
const (
	ConfidenceLow    = "LOW"
	ConfidenceMedium = "MEDIUM"
	ConfidenceHigh   = "HIGH"
)

const (
	fallbackConfidence  = 0.1
	maxExtractedKeyword = 5
)

// ParsedTransaction is the structured candidate produced for one message.
// Empty strings and nil pointers mean "not detected", never zero values.
type ParsedTransaction struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	MerchantName    string           `json:"merchant_name,omitempty"`
	Description     string           `json:"description"`
	Type            TransactionType  `json:"type,omitempty"`
	DateTime        *time.Time       `json:"date_time,omitempty"`
	UPIID           string           `json:"upi_id,omitempty"`
	ReferenceNumber string           `json:"reference_number,omitempty"`
	BankAccount     string           `json:"bank_account,omitempty"`
	Confidence      float64          `json:"confidence"`
	Metadata        Metadata         `json:"metadata"`
}

// Metadata carries context about how a result was produced.
type Metadata struct {
	Category          string   `json:"category,omitempty"`
	OriginalMessage   string   `json:"original_message"`
	ExtractedKeywords []string `json:"extracted_keywords"`
	Error             string   `json:"error,omitempty"`
}

// Failed reports whether the result came from the fallback path.
func (p ParsedTransaction) Failed() bool {
	return p.Metadata.Error != ""
}

// ConfidenceLevel buckets a confidence score: LOW below 0.5, MEDIUM below 0.8, HIGH otherwise.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return ConfidenceHigh
	case confidence >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IsValidTransactionType checks if the transaction type is one the parser emits
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	default:
		return false
	}
}
