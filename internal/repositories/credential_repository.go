package repositories

import (
	"context"
	"errors"
	"fmt"

	"sms-ledger/internal/models"

	"gorm.io/gorm"
)

// CredentialRepository handles database operations for the PIN credential
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{
		db: db,
	}
}

// Get returns the credential row, or ErrCredentialNotFound before a PIN is set
func (r *CredentialRepository) Get(ctx context.Context) (*models.Credential, error) {
	var credential models.Credential
	if err := r.db.WithContext(ctx).First(&credential, models.CredentialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return &credential, nil
}

// Save inserts the credential on first use and overwrites it afterwards
func (r *CredentialRepository) Save(ctx context.Context, credential *models.Credential) error {
	if credential == nil {
		return errors.New("credential cannot be nil")
	}

	db := r.db.WithContext(ctx)
	if credential.CreatedAt.IsZero() {
		if err := db.Create(credential).Error; err != nil {
			return fmt.Errorf("failed to create credential: %w", err)
		}
		return nil
	}

	credential.ID = models.CredentialID
	if err := credential.Validate(); err != nil {
		return err
	}
	if err := db.Save(credential).Error; err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	return nil
}
