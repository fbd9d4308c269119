package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrInvalidAction   = errors.New("invalid activity type")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !models.IsValidAuditAction(action) {
		return fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListActivity returns the audit trail newest first. An empty action lists everything.
func (s *AuditService) ListActivity(ctx context.Context, action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if action != "" {
		if err := ValidateActivityType(action); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(ctx, action, offset, limit)
}

// CountFailedUnlocksSince counts wrong PIN entries recorded after since
func (s *AuditService) CountFailedUnlocksSince(ctx context.Context, since time.Time) (int64, error) {
	return s.repo.CountSince(ctx, models.AuditActionUnlockFailed, since)
}

// PruneOlderThan deletes audit rows older than retention
func (s *AuditService) PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	return s.repo.DeleteOlderThan(ctx, retention)
}

func (s *AuditService) LogPINSet(ctx context.Context, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, authLog(models.AuditActionPINSet, ipAddress, userAgent))
}

func (s *AuditService) LogPINChanged(ctx context.Context, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, authLog(models.AuditActionPINChanged, ipAddress, userAgent))
}

// LogUnlock logs a successful unlock
func (s *AuditService) LogUnlock(ctx context.Context, method, ipAddress, userAgent string) error {
	log := authLog(models.AuditActionUnlockSucceeded, ipAddress, userAgent)
	log.SetMetadata("method", method)
	return s.CreateAuditLog(ctx, log)
}

// LogUnlockFailed logs a refused unlock with the reason it was refused
func (s *AuditService) LogUnlockFailed(ctx context.Context, method, reason, ipAddress, userAgent string) error {
	log := authLog(models.AuditActionUnlockFailed, ipAddress, userAgent)
	log.SetMetadata("method", method)
	log.SetMetadata("reason", reason)
	return s.CreateAuditLog(ctx, log)
}

// LogLockout logs the start of a lockout period
func (s *AuditService) LogLockout(ctx context.Context, until time.Time, ipAddress, userAgent string) error {
	log := authLog(models.AuditActionLockout, ipAddress, userAgent)
	log.SetMetadata("locked_until", until.UTC().Format(time.RFC3339))
	return s.CreateAuditLog(ctx, log)
}

func (s *AuditService) LogLocked(ctx context.Context, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, authLog(models.AuditActionLocked, ipAddress, userAgent))
}

func (s *AuditService) LogBiometricChanged(ctx context.Context, enabled bool, ipAddress, userAgent string) error {
	log := authLog(models.AuditActionBiometricChanged, ipAddress, userAgent)
	log.SetMetadata("enabled", enabled)
	return s.CreateAuditLog(ctx, log)
}

// LogEntryReviewed logs a manual correction of a ledger entry
func (s *AuditService) LogEntryReviewed(ctx context.Context, entryID uuid.UUID, changes map[string]interface{}, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		Action:     models.AuditActionEntryReviewed,
		Resource:   models.AuditResourceLedger,
		ResourceID: entryID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   changes,
	}
	return s.CreateAuditLog(ctx, log)
}

func (s *AuditService) LogEntryDeleted(ctx context.Context, entryID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		Action:     models.AuditActionEntryDeleted,
		Resource:   models.AuditResourceLedger,
		ResourceID: entryID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(ctx, log)
}

// LogLedgerExported logs an export with its format and size
func (s *AuditService) LogLedgerExported(ctx context.Context, format string, count int, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		Action:    models.AuditActionLedgerExported,
		Resource:  models.AuditResourceLedger,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata: models.JSONBMap{
			"format": format,
			"count":  count,
		},
	}
	return s.CreateAuditLog(ctx, log)
}

func authLog(action, ipAddress, userAgent string) *models.AuditLog {
	return &models.AuditLog{
		Action:     action,
		Resource:   models.AuditResourceAuth,
		ResourceID: fmt.Sprintf("%d", models.CredentialID),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
}
