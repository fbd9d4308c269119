// Package storage provides the encrypted key-value store the ledger lives in.
package storage

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Argon2id parameters for deriving the store key from a passphrase.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	ErrDecryptionFailed = errors.New("failed to decrypt stored value")
	ErrInvalidKeyLength = errors.New("encryption key must be 32 bytes")
)

// DeriveKey stretches a passphrase into a 32-byte XChaCha20-Poly1305 key.
func DeriveKey(passphrase, salt string) []byte {
	return argon2.IDKey([]byte(passphrase), []byte(salt), argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// EncryptedStore encrypts every value before it reaches the key-value table.
// The key is bound as additional data, so a ciphertext copied under another key fails to open.
type EncryptedStore struct {
	repo repositories.KVRepositoryInterface
	aead cipher.AEAD
}

// NewEncryptedStore creates a store over repo using a 32-byte key
func NewEncryptedStore(repo repositories.KVRepositoryInterface, key []byte) (*EncryptedStore, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeyLength
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &EncryptedStore{
		repo: repo,
		aead: aead,
	}, nil
}

// Get returns the decrypted value. A missing key yields ("", false, nil).
func (s *EncryptedStore) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := s.repo.Get(ctx, key)
	if errors.Is(err, repositories.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	plaintext, err := s.aead.Open(nil, entry.Nonce, entry.Ciphertext, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("%w: %s", ErrDecryptionFailed, key)
	}
	return string(plaintext), true, nil
}

// Set encrypts value under a fresh random nonce and stores it
func (s *EncryptedStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key is required")
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	return s.repo.Upsert(ctx, &models.KVEntry{
		Key:        key,
		Nonce:      nonce,
		Ciphertext: s.aead.Seal(nil, nonce, []byte(value), []byte(key)),
	})
}

// Delete removes a key
func (s *EncryptedStore) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// Keys lists stored keys with the given prefix. Keys are not encrypted.
func (s *EncryptedStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.repo.Keys(ctx, prefix)
}

var _ repositories.KeyValueStore = (*EncryptedStore)(nil)
