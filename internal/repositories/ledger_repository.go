package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"sms-ledger/internal/models"

	"github.com/google/uuid"
)

const (
	ledgerKeyPrefix    = "ledger/"
	referenceKeyPrefix = "ledger-ref/"
)

// LedgerRepository keeps ledger entries as JSON documents in a key-value store.
// A secondary ledger-ref/<reference> key maps reference numbers to entry IDs.
type LedgerRepository struct {
	store KeyValueStore
	mu    sync.Mutex
}

// NewLedgerRepository creates a new ledger repository over store
func NewLedgerRepository(store KeyValueStore) LedgerRepositoryInterface {
	return &LedgerRepository{
		store: store,
	}
}

func entryKey(id uuid.UUID) string {
	return ledgerKeyPrefix + id.String()
}

func referenceKey(reference string) string {
	return referenceKeyPrefix + strings.ToUpper(strings.TrimSpace(reference))
}

// Create stores a new entry. Entries whose reference is already recorded are refused.
func (r *LedgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}
	if entry.ID == uuid.Nil {
		return errors.New("ledger entry ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	indexed := models.IsDedupeReference(entry.ReferenceNumber)
	if indexed {
		_, found, err := r.store.Get(ctx, referenceKey(entry.ReferenceNumber))
		if err != nil {
			return fmt.Errorf("failed to check reference: %w", err)
		}
		if found {
			return ErrDuplicateReference
		}
	}

	if err := r.put(ctx, entry); err != nil {
		return err
	}

	if indexed {
		if err := r.store.Set(ctx, referenceKey(entry.ReferenceNumber), entry.ID.String()); err != nil {
			return fmt.Errorf("failed to index reference: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an entry by its ID
func (r *LedgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	return r.get(ctx, entryKey(id))
}

// FindByReference retrieves the entry recorded under a reference number.
// References without a digit are not indexed and never match.
func (r *LedgerRepository) FindByReference(ctx context.Context, reference string) (*models.LedgerEntry, error) {
	if !models.IsDedupeReference(reference) {
		return nil, ErrEntryNotFound
	}

	raw, found, err := r.store.Get(ctx, referenceKey(reference))
	if err != nil {
		return nil, fmt.Errorf("failed to look up reference: %w", err)
	}
	if !found {
		return nil, ErrEntryNotFound
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt reference index for %q: %w", reference, err)
	}
	return r.GetByID(ctx, id)
}

// List returns matching entries newest first along with the unpaginated total
func (r *LedgerRepository) List(ctx context.Context, filters models.LedgerFilters) ([]*models.LedgerEntry, int64, error) {
	keys, err := r.store.Keys(ctx, ledgerKeyPrefix)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger keys: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(keys))
	for _, key := range keys {
		entry, err := r.get(ctx, key)
		if errors.Is(err, ErrEntryNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		if filters.Matches(entry) {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].OccurredAt.Equal(entries[j].OccurredAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})

	total := int64(len(entries))
	return paginate(entries, filters.Offset, filters.Limit), total, nil
}

// Update overwrites an existing entry and keeps the reference index in step
func (r *LedgerRepository) Update(ctx context.Context, entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.GetByID(ctx, entry.ID)
	if err != nil {
		return err
	}

	oldIndexed := models.IsDedupeReference(existing.ReferenceNumber)
	newIndexed := models.IsDedupeReference(entry.ReferenceNumber)
	oldRef := referenceKey(existing.ReferenceNumber)
	newRef := referenceKey(entry.ReferenceNumber)
	if newIndexed && newRef != oldRef {
		raw, found, err := r.store.Get(ctx, newRef)
		if err != nil {
			return fmt.Errorf("failed to check reference: %w", err)
		}
		if found && raw != entry.ID.String() {
			return ErrDuplicateReference
		}
	}

	if err := r.put(ctx, entry); err != nil {
		return err
	}

	if oldIndexed && oldRef != newRef {
		if err := r.store.Delete(ctx, oldRef); err != nil {
			return fmt.Errorf("failed to drop old reference: %w", err)
		}
	}
	if newIndexed && oldRef != newRef {
		if err := r.store.Set(ctx, newRef, entry.ID.String()); err != nil {
			return fmt.Errorf("failed to index reference: %w", err)
		}
	}

	return nil
}

// Delete removes an entry and its reference index
func (r *LedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.Delete(ctx, entryKey(id)); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	if models.IsDedupeReference(existing.ReferenceNumber) {
		if err := r.store.Delete(ctx, referenceKey(existing.ReferenceNumber)); err != nil {
			return fmt.Errorf("failed to drop reference: %w", err)
		}
	}
	return nil
}

func (r *LedgerRepository) get(ctx context.Context, key string) (*models.LedgerEntry, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger entry: %w", err)
	}
	if !found {
		return nil, ErrEntryNotFound
	}

	var entry models.LedgerEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode ledger entry %s: %w", key, err)
	}
	return &entry, nil
}

func (r *LedgerRepository) put(ctx context.Context, entry *models.LedgerEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode ledger entry: %w", err)
	}
	if err := r.store.Set(ctx, entryKey(entry.ID), string(data)); err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
