package dto

import (
	"time"

	"sms-ledger/internal/models"
	"sms-ledger/internal/parser"
)

const (
	IngestOutcomeStored    = "stored"
	IngestOutcomeDuplicate = "duplicate"
	IngestOutcomeSkipped   = "skipped"
	IngestOutcomeFailed    = "failed"

	SkipReasonNotTransaction = "not_transaction"
	SkipReasonNoAmount       = "no_amount"
	SkipReasonEmpty          = "empty_message"

	MaxBatchSize = 500
)

// ParseMessageRequest carries one raw message for parsing without storage
type ParseMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ParseMessageResponse is the parser output plus its confidence bucket
type ParseMessageResponse struct {
	Result          parser.ParsedTransaction `json:"result"`
	ConfidenceLevel string                   `json:"confidence_level"`
	IsTransaction   bool                     `json:"is_transaction"`
}

// CheckMessageResponse reports the transaction keyword gate result
type CheckMessageResponse struct {
	IsTransaction bool `json:"is_transaction"`
}

// IngestMessageRequest is one message to turn into a ledger entry
type IngestMessageRequest struct {
	Message    string     `json:"message" validate:"required,max=2000"`
	Source     string     `json:"source,omitempty" validate:"omitempty,oneof=sms notification manual"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// IngestBatchRequest carries one or many messages. A single Message is accepted as a batch of one.
type IngestBatchRequest struct {
	Message    string                 `json:"message,omitempty" validate:"omitempty,max=2000"`
	Source     string                 `json:"source,omitempty" validate:"omitempty,oneof=sms notification manual"`
	ReceivedAt *time.Time             `json:"received_at,omitempty"`
	Messages   []IngestMessageRequest `json:"messages,omitempty" validate:"omitempty,dive"`
}

// Items flattens the request into the list of messages to ingest
func (r *IngestBatchRequest) Items() []IngestMessageRequest {
	if len(r.Messages) > 0 {
		return r.Messages
	}
	if r.Message == "" {
		return nil
	}
	return []IngestMessageRequest{{Message: r.Message, Source: r.Source, ReceivedAt: r.ReceivedAt}}
}

// IngestResult is the outcome of ingesting one message
type IngestResult struct {
	Outcome    string              `json:"outcome"`
	Reason     string              `json:"reason,omitempty"`
	Entry      *models.LedgerEntry `json:"entry,omitempty"`
	Confidence float64             `json:"confidence"`
	Error      string              `json:"error,omitempty"`
}

// IngestBatchResponse lists per-message outcomes in request order
type IngestBatchResponse struct {
	Results    []*IngestResult `json:"results"`
	Stored     int             `json:"stored"`
	Duplicates int             `json:"duplicates"`
	Skipped    int             `json:"skipped"`
	Failed     int             `json:"failed"`
}

// NewIngestBatchResponse tallies results by outcome
func NewIngestBatchResponse(results []*IngestResult) *IngestBatchResponse {
	resp := &IngestBatchResponse{Results: results}
	for _, r := range results {
		switch r.Outcome {
		case IngestOutcomeStored:
			resp.Stored++
		case IngestOutcomeDuplicate:
			resp.Duplicates++
		case IngestOutcomeSkipped:
			resp.Skipped++
		case IngestOutcomeFailed:
			resp.Failed++
		}
	}
	return resp
}
