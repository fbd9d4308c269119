package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sms-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// KVRepository handles database operations for encrypted key-value rows
type KVRepository struct {
	db *gorm.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *gorm.DB) KVRepositoryInterface {
	return &KVRepository{
		db: db,
	}
}

// Get retrieves a row by key
func (r *KVRepository) Get(ctx context.Context, key string) (*models.KVEntry, error) {
	var entry models.KVEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return &entry, nil
}

// Upsert inserts a row or replaces the nonce and ciphertext of an existing one
func (r *KVRepository) Upsert(ctx context.Context, entry *models.KVEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}

	entry.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"nonce", "ciphertext", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert key %q: %w", entry.Key, err)
	}
	return nil
}

// Delete removes a row. Deleting a missing key is not an error.
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists keys starting with prefix in ascending order
func (r *KVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&models.KVEntry{}).
		Where(`key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%").
		Order("key ASC").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
