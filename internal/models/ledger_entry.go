package models

import (
	"errors"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LedgerTypeIncome   = "income"
	LedgerTypeExpense  = "expense"
	LedgerTypeTransfer = "transfer"

	LedgerStatusConfirmed   = "confirmed"
	LedgerStatusNeedsReview = "needs_review"
	LedgerStatusRejected    = "rejected"

	SourceSMS          = "sms"
	SourceNotification = "notification"
	SourceManual       = "manual"

	maxCategoryLength = 50
)

var (
	ErrInvalidLedgerType   = errors.New("invalid transaction type")
	ErrInvalidLedgerStatus = errors.New("invalid transaction status")
	ErrInvalidSource       = errors.New("invalid message source")
	ErrInvalidAmount       = errors.New("transaction amount must be positive")
	ErrInvalidConfidence   = errors.New("confidence must be between 0 and 1")
	ErrMissingDescription  = errors.New("transaction description is required")
	ErrCategoryTooLong     = errors.New("category too long")
)

// LedgerEntry is a parsed transaction persisted in the encrypted ledger.
type LedgerEntry struct {
	ID              uuid.UUID       `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	MerchantName    string          `json:"merchant_name,omitempty"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	UPIID           string          `json:"upi_id,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	BankAccount     string          `json:"bank_account,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
	Confidence      float64         `json:"confidence"`
	ConfidenceLevel string          `json:"confidence_level"`
	Status          string          `json:"status"`
	Source          string          `json:"source"`
	OriginalMessage string          `json:"original_message,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Prepare fills identifiers, defaults and timestamps before the first save.
func (e *LedgerEntry) Prepare(now time.Time) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = LedgerStatusNeedsReview
	}
	if e.Source == "" {
		e.Source = SourceSMS
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}

	return e.Validate()
}

// Validate validates the entry fields
func (e *LedgerEntry) Validate() error {
	if e.ID == uuid.Nil {
		return errors.New("entry ID is required")
	}

	if !IsValidLedgerType(e.Type) {
		return ErrInvalidLedgerType
	}

	if !IsValidLedgerStatus(e.Status) {
		return ErrInvalidLedgerStatus
	}

	if !IsValidSource(e.Source) {
		return ErrInvalidSource
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if e.Confidence < 0 || e.Confidence > 1 {
		return ErrInvalidConfidence
	}

	if e.Description == "" {
		return ErrMissingDescription
	}

	if len(e.Category) > maxCategoryLength {
		return ErrCategoryTooLong
	}

	return nil
}

// NeedsReview returns true if the entry awaits a manual decision
func (e *LedgerEntry) NeedsReview() bool {
	return e.Status == LedgerStatusNeedsReview
}

// IsEditable reports whether fields may still be corrected by hand.
func (e *LedgerEntry) IsEditable() bool {
	return e.Status != LedgerStatusRejected
}

// CanTransitionTo checks if an entry can move to a new status
func (e *LedgerEntry) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		LedgerStatusNeedsReview: {LedgerStatusConfirmed, LedgerStatusRejected},
		LedgerStatusConfirmed:   {}, // Terminal state
		LedgerStatusRejected:    {}, // Terminal state
	}

	allowed, exists := validTransitions[e.Status]
	if !exists {
		return false
	}
	return slices.Contains(allowed, newStatus)
}

// MarkReviewed records a manual status decision.
func (e *LedgerEntry) MarkReviewed(status string, now time.Time) {
	e.Status = status
	e.ReviewedAt = &now
	e.UpdatedAt = now
}

// SignedAmount returns the amount with expenses negated. Transfers count as outflow.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Type == LedgerTypeIncome {
		return e.Amount
	}
	return e.Amount.Neg()
}

// IsDedupeReference reports whether a reference number identifies a transaction.
// References without a digit are never used for duplicate detection.
func IsDedupeReference(reference string) bool {
	return strings.ContainsFunc(reference, unicode.IsDigit)
}

// IsValidLedgerType checks if the transaction type is valid
func IsValidLedgerType(t string) bool {
	switch t {
	case LedgerTypeIncome, LedgerTypeExpense, LedgerTypeTransfer:
		return true
	default:
		return false
	}
}

// IsValidLedgerStatus checks if the status is valid
func IsValidLedgerStatus(status string) bool {
	switch status {
	case LedgerStatusConfirmed, LedgerStatusNeedsReview, LedgerStatusRejected:
		return true
	default:
		return false
	}
}

// IsValidSource checks if the message source is valid
func IsValidSource(source string) bool {
	switch source {
	case SourceSMS, SourceNotification, SourceManual:
		return true
	default:
		return false
	}
}
