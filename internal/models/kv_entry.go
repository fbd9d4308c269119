package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// KVEntry is one encrypted value in the key-value store.
type KVEntry struct {
	Key        string    `gorm:"type:varchar(255);primaryKey" json:"key"`
	Nonce      []byte    `gorm:"not null" json:"-"`
	Ciphertext []byte    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (kv *KVEntry) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if kv.CreatedAt.IsZero() {
		kv.CreatedAt = now
	}
	if kv.UpdatedAt.IsZero() {
		kv.UpdatedAt = now
	}
	if kv.Key == "" {
		return errors.New("key is required")
	}
	return nil
}

func (kv *KVEntry) TableName() string {
	return "kv_entries"
}
