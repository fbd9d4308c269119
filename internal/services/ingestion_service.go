package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/parser"
	"sms-ledger/internal/repositories"
)

var (
	ErrBatchTooLarge  = fmt.Errorf("batch exceeds %d messages", dto.MaxBatchSize)
	ErrInvalidSource  = errors.New("invalid message source")
	ErrStoreEntryFail = errors.New("failed to store ledger entry")
)

// IngestionService runs raw messages through the parser and records the results in the ledger
type IngestionService struct {
	parser               MessageParserInterface
	ledgerRepo           repositories.LedgerRepositoryInterface
	auditLogger          AuditLoggerInterface
	metrics              MetricsRecorderInterface
	autoConfirmThreshold float64
	logger               *slog.Logger
	now                  func() time.Time
}

// NewIngestionService creates a new ingestion service. Entries scoring at least
// autoConfirmThreshold are stored as confirmed, the rest wait for review.
func NewIngestionService(
	messageParser MessageParserInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	autoConfirmThreshold float64,
	logger *slog.Logger,
) IngestionServiceInterface {
	return &IngestionService{
		parser:               messageParser,
		ledgerRepo:           ledgerRepo,
		auditLogger:          auditLogger,
		metrics:              metrics,
		autoConfirmThreshold: autoConfirmThreshold,
		logger:               logger,
		now:                  time.Now,
	}
}

// Ingest parses one message and stores it unless it is skipped or already recorded
func (s *IngestionService) Ingest(ctx context.Context, req dto.IngestMessageRequest) (*dto.IngestResult, error) {
	start := s.now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricIngestDuration, time.Since(start))
	}()

	source := req.Source
	if source == "" {
		source = models.SourceSMS
	}
	if !models.IsValidSource(source) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, req.Source)
	}

	if strings.TrimSpace(req.Message) == "" {
		return s.skip(ctx, dto.SkipReasonEmpty, source, 0), nil
	}

	if !s.parser.IsTransactionMessage(req.Message) {
		return s.skip(ctx, dto.SkipReasonNotTransaction, source, 0), nil
	}

	parsed := s.parser.Parse(req.Message)
	level := parser.ConfidenceLevel(parsed.Confidence)
	s.metrics.IncrementCounter(MetricMessageParsed, map[string]string{"confidence_level": level})
	s.metrics.RecordGauge(MetricParseConfidence, parsed.Confidence, nil)

	if parsed.Amount == nil || !parsed.Amount.IsPositive() {
		return s.skip(ctx, dto.SkipReasonNoAmount, source, parsed.Confidence), nil
	}

	if models.IsDedupeReference(parsed.ReferenceNumber) {
		existing, err := s.ledgerRepo.FindByReference(ctx, parsed.ReferenceNumber)
		if err == nil {
			return s.duplicate(ctx, existing, parsed), nil
		}
		if !errors.Is(err, repositories.ErrEntryNotFound) {
			return nil, fmt.Errorf("failed to check for duplicate: %w", err)
		}
	}

	entry := s.buildEntry(parsed, source, req.ReceivedAt)
	if err := entry.Prepare(s.now()); err != nil {
		return nil, fmt.Errorf("invalid ledger entry: %w", err)
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrDuplicateReference) {
			// another ingest recorded the reference after our lookup
			existing, findErr := s.ledgerRepo.FindByReference(ctx, parsed.ReferenceNumber)
			if findErr == nil {
				return s.duplicate(ctx, existing, parsed), nil
			}
		}
		s.metrics.IncrementCounter(MetricIngestFailed, nil)
		return nil, fmt.Errorf("%w: %w", ErrStoreEntryFail, err)
	}

	s.metrics.IncrementCounter(MetricMessageIngested, map[string]string{"status": entry.Status})
	s.auditLogger.LogMessageIngested(ctx, entry.ID, entry.Status, entry.Source, entry.Confidence)

	return &dto.IngestResult{
		Outcome:    dto.IngestOutcomeStored,
		Entry:      entry,
		Confidence: parsed.Confidence,
	}, nil
}

// IngestBatch ingests messages in order. A failing message is reported in its
// result and does not stop the batch; a cancelled context does.
func (s *IngestionService) IngestBatch(ctx context.Context, reqs []dto.IngestMessageRequest) ([]*dto.IngestResult, error) {
	if len(reqs) > dto.MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	results := make([]*dto.IngestResult, 0, len(reqs))
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted after %d of %d messages: %w", i, len(reqs), err)
		}

		result, err := s.Ingest(ctx, req)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to ingest message", "index", i, "error", err)
			result = &dto.IngestResult{
				Outcome: dto.IngestOutcomeFailed,
				Error:   err.Error(),
			}
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *IngestionService) buildEntry(parsed parser.ParsedTransaction, source string, receivedAt *time.Time) *models.LedgerEntry {
	status := models.LedgerStatusNeedsReview
	if parsed.Confidence >= s.autoConfirmThreshold {
		status = models.LedgerStatusConfirmed
	}

	txType := string(parsed.Type)
	if txType == "" {
		txType = models.LedgerTypeExpense
	}

	category := parsed.Metadata.Category
	if category == "" {
		category = parser.CategoryOther
	}

	// the parser reports "now" for the message time, so the receive time is preferred
	var occurredAt time.Time
	switch {
	case receivedAt != nil && !receivedAt.IsZero():
		occurredAt = *receivedAt
	case parsed.DateTime != nil:
		occurredAt = *parsed.DateTime
	}

	return &models.LedgerEntry{
		Amount:          *parsed.Amount,
		Type:            txType,
		MerchantName:    parsed.MerchantName,
		Category:        category,
		Description:     parsed.Description,
		UPIID:           parsed.UPIID,
		ReferenceNumber: parsed.ReferenceNumber,
		BankAccount:     parsed.BankAccount,
		OccurredAt:      occurredAt,
		Confidence:      parsed.Confidence,
		ConfidenceLevel: parser.ConfidenceLevel(parsed.Confidence),
		Status:          status,
		Source:          source,
		OriginalMessage: parsed.Metadata.OriginalMessage,
		Keywords:        parsed.Metadata.ExtractedKeywords,
	}
}

func (s *IngestionService) skip(ctx context.Context, reason, source string, confidence float64) *dto.IngestResult {
	s.metrics.IncrementCounter(MetricMessageSkipped, map[string]string{"reason": reason})
	s.auditLogger.LogMessageSkipped(ctx, reason, source)
	return &dto.IngestResult{
		Outcome:    dto.IngestOutcomeSkipped,
		Reason:     reason,
		Confidence: confidence,
	}
}

func (s *IngestionService) duplicate(ctx context.Context, existing *models.LedgerEntry, parsed parser.ParsedTransaction) *dto.IngestResult {
	s.metrics.IncrementCounter(MetricMessageDuplicate, nil)
	s.auditLogger.LogDuplicateMessage(ctx, existing.ID, parsed.ReferenceNumber)
	return &dto.IngestResult{
		Outcome:    dto.IngestOutcomeDuplicate,
		Entry:      existing,
		Confidence: parsed.Confidence,
	}
}
