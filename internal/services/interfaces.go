package services

import (
	"context"
	"io"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/parser"

	"github.com/google/uuid"
)

// MessageParserInterface is the extraction engine as seen by the services
type MessageParserInterface interface {
	Parse(raw string) parser.ParsedTransaction
	IsTransactionMessage(text string) bool
}

// TokenServiceInterface issues and verifies session tokens
type TokenServiceInterface interface {
	GenerateSessionToken(credential *models.Credential, method string) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PINServiceInterface defines the PIN gate operations
type PINServiceInterface interface {
	ValidatePIN(pin string) error
	SetPIN(ctx context.Context, pin, ipAddress, userAgent string) error
	ChangePIN(ctx context.Context, currentPIN, newPIN, ipAddress, userAgent string) error
	Unlock(ctx context.Context, pin, ipAddress, userAgent string) (*dto.SessionResponse, error)
	UnlockWithBiometric(ctx context.Context, ipAddress, userAgent string) (*dto.SessionResponse, error)
	SetBiometric(ctx context.Context, enabled bool, ipAddress, userAgent string) error
	Lock(ctx context.Context, ipAddress, userAgent string) error
	IsUnlocked(ctx context.Context, token string) bool
	Status(ctx context.Context) (*dto.AuthStatusResponse, error)
}

// IngestionServiceInterface turns raw messages into ledger entries
type IngestionServiceInterface interface {
	Ingest(ctx context.Context, req dto.IngestMessageRequest) (*dto.IngestResult, error)
	IngestBatch(ctx context.Context, reqs []dto.IngestMessageRequest) ([]*dto.IngestResult, error)
}

// LedgerServiceInterface defines ledger browsing and review operations
type LedgerServiceInterface interface {
	List(ctx context.Context, filters models.LedgerFilters) ([]*models.LedgerEntry, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error)
	Review(ctx context.Context, id uuid.UUID, req *dto.ReviewEntryRequest, ipAddress, userAgent string) (*models.LedgerEntry, error)
	Delete(ctx context.Context, id uuid.UUID, ipAddress, userAgent string) error
	Summary(ctx context.Context, filters models.LedgerFilters) (*models.LedgerSummary, error)
}

// ExportServiceInterface writes the ledger out in a portable format
type ExportServiceInterface interface {
	Export(ctx context.Context, w io.Writer, format string, filters models.LedgerFilters, ipAddress, userAgent string) (int, error)
}

// AuditServiceInterface defines the contract for the persisted audit trail
type AuditServiceInterface interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListActivity(ctx context.Context, action string, offset, limit int) ([]*models.AuditLog, int64, error)
	CountFailedUnlocksSince(ctx context.Context, since time.Time) (int64, error)
	PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error)
	LogPINSet(ctx context.Context, ipAddress, userAgent string) error
	LogPINChanged(ctx context.Context, ipAddress, userAgent string) error
	LogUnlock(ctx context.Context, method, ipAddress, userAgent string) error
	LogUnlockFailed(ctx context.Context, method, reason, ipAddress, userAgent string) error
	LogLockout(ctx context.Context, until time.Time, ipAddress, userAgent string) error
	LogLocked(ctx context.Context, ipAddress, userAgent string) error
	LogBiometricChanged(ctx context.Context, enabled bool, ipAddress, userAgent string) error
	LogEntryReviewed(ctx context.Context, entryID uuid.UUID, changes map[string]interface{}, ipAddress, userAgent string) error
	LogEntryDeleted(ctx context.Context, entryID uuid.UUID, ipAddress, userAgent string) error
	LogLedgerExported(ctx context.Context, format string, count int, ipAddress, userAgent string) error
}

// AuditLoggerInterface writes structured audit events to the process log
type AuditLoggerInterface interface {
	LogAuthEvent(ctx context.Context, eventType, method string)
	LogLockout(ctx context.Context, until time.Time)
	LogMessageIngested(ctx context.Context, entryID uuid.UUID, status, source string, confidence float64)
	LogMessageSkipped(ctx context.Context, reason, source string)
	LogDuplicateMessage(ctx context.Context, existingID uuid.UUID, reference string)
	LogEntryStatusChange(ctx context.Context, entryID uuid.UUID, oldStatus, newStatus string)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface trips after repeated storage failures
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
