package repositories

import (
	"context"
	"errors"
	"time"

	"sms-ledger/internal/models"

	"github.com/google/uuid"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrKeyNotFound        = errors.New("key not found")
	ErrEntryNotFound      = errors.New("ledger entry not found")
	ErrDuplicateReference = errors.New("reference number already recorded")
)

// CredentialRepositoryInterface defines the contract for the single PIN credential row
type CredentialRepositoryInterface interface {
	Get(ctx context.Context) (*models.Credential, error)
	Save(ctx context.Context, credential *models.Credential) error
}

// KVRepositoryInterface stores encrypted key-value rows without interpreting them
type KVRepositoryInterface interface {
	Get(ctx context.Context, key string) (*models.KVEntry, error)
	Upsert(ctx context.Context, entry *models.KVEntry) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// KeyValueStore is a string key-value store. A missing key reads as ("", false, nil).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// LedgerRepositoryInterface defines the contract for ledger entry persistence
type LedgerRepositoryInterface interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error)
	FindByReference(ctx context.Context, reference string) (*models.LedgerEntry, error)
	List(ctx context.Context, filters models.LedgerFilters) ([]*models.LedgerEntry, int64, error)
	Update(ctx context.Context, entry *models.LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, action string, offset, limit int) ([]*models.AuditLog, int64, error)
	CountSince(ctx context.Context, action string, since time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
