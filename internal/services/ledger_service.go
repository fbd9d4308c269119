package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound           = errors.New("ledger entry not found")
	ErrEntryNotEditable        = errors.New("rejected entries cannot be edited")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidDateRange        = errors.New("invalid date range: start date must be before end date")
	ErrInvalidAmountRange      = errors.New("invalid amount range: minimum exceeds maximum")
	ErrEmptyReview             = errors.New("review changes nothing")
)

// LedgerService handles browsing and manual review of ledger entries
type LedgerService struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &LedgerService{
		ledgerRepo:   ledgerRepo,
		auditService: auditService,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns entries newest first together with the unpaginated total
func (s *LedgerService) List(ctx context.Context, filters models.LedgerFilters) ([]*models.LedgerEntry, int64, error) {
	if err := validateFilters(filters); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.ledgerRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, total, nil
}

// Get retrieves a single entry
func (s *LedgerService) Get(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	entry, err := s.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

// Review applies manual corrections and an optional status decision
func (s *LedgerService) Review(ctx context.Context, id uuid.UUID, req *dto.ReviewEntryRequest, ipAddress, userAgent string) (*models.LedgerEntry, error) {
	if req == nil || req.IsEmpty() {
		return nil, ErrEmptyReview
	}

	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entry.IsEditable() {
		return nil, ErrEntryNotEditable
	}

	oldStatus := entry.Status
	changes := map[string]interface{}{}

	if req.Amount != nil && !req.Amount.Equal(entry.Amount) {
		changes["amount"] = map[string]string{"from": entry.Amount.String(), "to": req.Amount.String()}
		entry.Amount = *req.Amount
	}
	if req.Type != nil && *req.Type != entry.Type {
		changes["type"] = map[string]string{"from": entry.Type, "to": *req.Type}
		entry.Type = *req.Type
	}
	if req.Category != nil && *req.Category != entry.Category {
		changes["category"] = map[string]string{"from": entry.Category, "to": *req.Category}
		entry.Category = *req.Category
	}
	if req.MerchantName != nil && *req.MerchantName != entry.MerchantName {
		changes["merchant_name"] = map[string]string{"from": entry.MerchantName, "to": *req.MerchantName}
		entry.MerchantName = strings.TrimSpace(*req.MerchantName)
	}
	if req.Description != nil && *req.Description != entry.Description {
		changes["description"] = map[string]string{"from": entry.Description, "to": *req.Description}
		entry.Description = *req.Description
	}

	now := s.now()
	if req.Status != nil && *req.Status != entry.Status {
		if !entry.CanTransitionTo(*req.Status) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, entry.Status, *req.Status)
		}
		changes["status"] = map[string]string{"from": entry.Status, "to": *req.Status}
		entry.MarkReviewed(*req.Status, now)
	}

	if len(changes) == 0 {
		return entry, nil
	}

	entry.UpdatedAt = now
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	if entry.Status != oldStatus {
		s.auditLogger.LogEntryStatusChange(ctx, entry.ID, oldStatus, entry.Status)
		s.metrics.IncrementCounter(MetricEntryReviewed, map[string]string{"status": entry.Status})
	}
	if err := s.auditService.LogEntryReviewed(ctx, entry.ID, changes, ipAddress, userAgent); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log", "error", err, "entry_id", entry.ID)
	}

	return entry, nil
}

// Delete removes an entry from the ledger
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID, ipAddress, userAgent string) error {
	if err := s.ledgerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	s.metrics.IncrementCounter(MetricEntryDeleted, nil)
	if err := s.auditService.LogEntryDeleted(ctx, id, ipAddress, userAgent); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log", "error", err, "entry_id", id)
	}
	return nil
}

// Summary totals confirmed entries per category. Entries awaiting review or
// rejected are counted but never summed.
func (s *LedgerService) Summary(ctx context.Context, filters models.LedgerFilters) (*models.LedgerSummary, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	filters.Offset, filters.Limit = 0, 0
	entries, _, err := s.ledgerRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	summary := &models.LedgerSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		NetAmount:    decimal.Zero,
	}
	byCategory := map[string]*models.CategorySummary{}

	for _, entry := range entries {
		switch entry.Status {
		case models.LedgerStatusNeedsReview:
			summary.NeedsReviewCount++
			continue
		case models.LedgerStatusRejected:
			summary.RejectedCount++
			continue
		}
		summary.ConfirmedCount++

		cat, ok := byCategory[entry.Category]
		if !ok {
			cat = &models.CategorySummary{
				Category:     entry.Category,
				IncomeTotal:  decimal.Zero,
				ExpenseTotal: decimal.Zero,
				NetAmount:    decimal.Zero,
			}
			byCategory[entry.Category] = cat
		}
		cat.EntryCount++
		if entry.Type == models.LedgerTypeIncome {
			cat.IncomeTotal = cat.IncomeTotal.Add(entry.Amount)
			summary.TotalIncome = summary.TotalIncome.Add(entry.Amount)
		} else {
			cat.ExpenseTotal = cat.ExpenseTotal.Add(entry.Amount)
			summary.TotalExpense = summary.TotalExpense.Add(entry.Amount)
		}
		cat.NetAmount = cat.NetAmount.Add(entry.SignedAmount())
	}

	summary.Categories = make([]models.CategorySummary, 0, len(byCategory))
	for _, cat := range byCategory {
		summary.Categories = append(summary.Categories, *cat)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})
	summary.NetAmount = summary.TotalIncome.Sub(summary.TotalExpense)

	s.metrics.RecordGauge(MetricLedgerEntries, float64(summary.ConfirmedCount), map[string]string{"status": models.LedgerStatusConfirmed})
	s.metrics.RecordGauge(MetricLedgerEntries, float64(summary.NeedsReviewCount), map[string]string{"status": models.LedgerStatusNeedsReview})
	s.metrics.RecordGauge(MetricLedgerEntries, float64(summary.RejectedCount), map[string]string{"status": models.LedgerStatusRejected})

	return summary, nil
}

func validateFilters(filters models.LedgerFilters) error {
	if filters.Status != "" && !models.IsValidLedgerStatus(filters.Status) {
		return models.ErrInvalidLedgerStatus
	}
	if filters.Type != "" && !models.IsValidLedgerType(filters.Type) {
		return models.ErrInvalidLedgerType
	}
	if filters.Source != "" && !models.IsValidSource(filters.Source) {
		return models.ErrInvalidSource
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return ErrInvalidDateRange
	}
	if filters.MinAmount != nil && filters.MaxAmount != nil && filters.MinAmount.GreaterThan(*filters.MaxAmount) {
		return ErrInvalidAmountRange
	}
	return nil
}
