// Package parser turns bank and UPI SMS text into scored transaction candidates.
//
// Extraction is rule based: every field has an ordered list of patterns and the
// first usable match wins. The confidence score is a weighted sum of the fields
// that were found, nudged by a small random perturbation.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("message is empty")

// Parser is safe for concurrent use; it holds only read-only tables.
type Parser struct {
	tables *Tables
	random RandomSource
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithTables replaces the built-in pattern tables.
func WithTables(t *Tables) Option {
	return func(p *Parser) {
		if t != nil {
			p.tables = t
		}
	}
}

// WithRandomSource sets the source of the confidence perturbation.
func WithRandomSource(src RandomSource) Option {
	return func(p *Parser) {
		if src != nil {
			p.random = src
		}
	}
}

// WithClock sets the clock used for the transaction time.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the logger used to report recovered failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser with the default tables and a real random source.
func New(opts ...Option) *Parser {
	p := &Parser{
		tables: defaultTables,
		random: NewRandomSource(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tables returns the tables in use.
func (p *Parser) Tables() *Tables {
	return p.tables
}

// Parse extracts a transaction candidate from raw. It never panics: empty input
// and internal failures produce a low-confidence fallback record.
func (p *Parser) Parse(raw string) (result ParsedTransaction) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("message parsing failed",
				slog.String("event_type", "parse_failed"),
				slog.Any("panic", r),
			)
			result = fallbackResult(raw, fmt.Errorf("%v", r))
		}
	}()

	normalized := normalizeText(raw)
	if normalized == "" {
		return fallbackResult(raw, ErrEmptyMessage)
	}
	lower := strings.ToLower(normalized)

	amount := extractAmount(p.tables.AmountPatterns, normalized)
	upiID := extractUPIID(p.tables.UPIPatterns, normalized)
	reference := extractReferenceNumber(p.tables.ReferencePatterns, normalized)
	account := extractBankAccount(p.tables.AccountPatterns, normalized)
	when := extractDateTimeOrDefaultToNow(p.tables.DateTimePatterns, normalized, p.now)

	txType, typeKeyword := classifyType(p.tables.TypeKeywords, lower)
	merchant := inferMerchant(p.tables.CategoryKeywords, p.tables.MerchantStopWords, lower)

	confidence := perturb(baseConfidence(evidence{
		amount:    amount,
		upiID:     upiID,
		reference: reference,
		txType:    txType,
		merchant:  merchant.Name,
	}), p.random)

	return ParsedTransaction{
		Amount:          amount,
		MerchantName:    merchant.Name,
		Description:     synthesizeDescription(normalized, merchant, txType),
		Type:            txType,
		DateTime:        &when,
		UPIID:           upiID,
		ReferenceNumber: reference,
		BankAccount:     account,
		Confidence:      confidence,
		Metadata: Metadata{
			Category:          merchant.Category,
			OriginalMessage:   raw,
			ExtractedKeywords: p.extractedKeywords(lower, typeKeyword, merchant.Keyword),
		},
	}
}

// IsTransactionMessage reports whether text contains at least two of the
// transaction keywords. It is a cheap pre-filter, not a quality signal.
func (p *Parser) IsTransactionMessage(text string) bool {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range p.tables.TransactionKeywords {
		if strings.Contains(lower, kw) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// extractedKeywords lists the gate keywords found in the message followed by
// the type and category keywords that drove classification.
func (p *Parser) extractedKeywords(lower, typeKeyword, categoryKeyword string) []string {
	keywords := make([]string, 0, maxExtractedKeyword)
	add := func(kw string) {
		if kw == "" || len(keywords) >= maxExtractedKeyword {
			return
		}
		if slices.Contains(keywords, kw) {
			return
		}
		keywords = append(keywords, kw)
	}

	for _, kw := range p.tables.TransactionKeywords {
		if strings.Contains(lower, kw) {
			add(kw)
		}
	}
	add(typeKeyword)
	add(categoryKeyword)
	return keywords
}

func fallbackResult(raw string, err error) ParsedTransaction {
	return ParsedTransaction{
		Description: failedDescription(raw),
		Confidence:  fallbackConfidence,
		Metadata: Metadata{
			OriginalMessage:   raw,
			ExtractedKeywords: []string{},
			Error:             err.Error(),
		},
	}
}

var defaultParser = New()

// Parse runs the package-level parser over raw.
func Parse(raw string) ParsedTransaction {
	return defaultParser.Parse(raw)
}

// IsTransactionMessage runs the package-level gate over text.
func IsTransactionMessage(text string) bool {
	return defaultParser.IsTransactionMessage(text)
}
