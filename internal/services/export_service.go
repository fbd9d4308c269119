package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"
)

var ErrInvalidExportFormat = errors.New("invalid export format")

var csvHeader = []string{
	"id", "occurred_at", "type", "amount", "merchant_name", "category", "description",
	"upi_id", "reference_number", "bank_account", "status", "confidence", "source",
}

// ExportService writes ledger entries as CSV or JSON
type ExportService struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExportServiceInterface {
	return &ExportService{
		ledgerRepo:   ledgerRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// Export writes every entry matching filters to w and returns how many were written.
// Pagination in filters is ignored.
func (s *ExportService) Export(ctx context.Context, w io.Writer, format string, filters models.LedgerFilters, ipAddress, userAgent string) (int, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != dto.ExportFormatCSV && format != dto.ExportFormatJSON {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}

	filters.Offset, filters.Limit = 0, 0
	entries, _, err := s.ledgerRepo.List(ctx, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	switch format {
	case dto.ExportFormatCSV:
		err = writeCSV(w, entries)
	default:
		err = writeJSON(w, entries)
	}
	if err != nil {
		return 0, err
	}

	s.metrics.IncrementCounter(MetricLedgerExported, map[string]string{"format": format})
	if err := s.auditService.LogLedgerExported(ctx, format, len(entries), ipAddress, userAgent); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log", "error", err, "format", format)
	}

	return len(entries), nil
}

func writeCSV(out io.Writer, entries []*models.LedgerEntry) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID.String(),
			e.OccurredAt.UTC().Format(time.RFC3339),
			e.Type,
			e.Amount.StringFixed(2),
			e.MerchantName,
			e.Category,
			e.Description,
			e.UPIID,
			e.ReferenceNumber,
			e.BankAccount,
			e.Status,
			strconv.FormatFloat(e.Confidence, 'f', 2, 64),
			e.Source,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func writeJSON(out io.Writer, entries []*models.LedgerEntry) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}
