package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// CredentialID is the primary key of the single credentials row.
const CredentialID = 1

// Credential holds the PIN gate state for the local ledger owner.
type Credential struct {
	ID               uint       `gorm:"primaryKey;autoIncrement:false" json:"-"`
	PINHash          string     `gorm:"type:varchar(255);not null" json:"-"`
	BiometricEnabled bool       `gorm:"not null;default:false" json:"biometric_enabled"`
	FailedAttempts   int        `gorm:"not null;default:0" json:"-"`
	LockedUntil      *time.Time `json:"locked_until,omitempty"`
	SessionVersion   int        `gorm:"not null;default:1" json:"-"`
	PINUpdatedAt     time.Time  `gorm:"not null" json:"pin_updated_at"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}

func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	c.ID = CredentialID

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	if c.PINUpdatedAt.IsZero() {
		c.PINUpdatedAt = now
	}
	if c.SessionVersion == 0 {
		c.SessionVersion = 1
	}

	return c.Validate()
}

func (c *Credential) Validate() error {
	if c.PINHash == "" {
		return errors.New("PIN hash is required")
	}
	if c.FailedAttempts < 0 {
		return errors.New("failed attempts cannot be negative")
	}
	return nil
}

// IsLockedOut reports whether unlock attempts are refused at now.
func (c *Credential) IsLockedOut(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}

// RegisterFailure counts a wrong PIN and locks out once maxAttempts is reached.
// It returns true when this failure started a lockout.
func (c *Credential) RegisterFailure(maxAttempts int, lockout time.Duration, now time.Time) bool {
	c.FailedAttempts++
	if c.FailedAttempts < maxAttempts {
		return false
	}
	until := now.Add(lockout)
	c.LockedUntil = &until
	c.FailedAttempts = 0
	return true
}

func (c *Credential) ResetFailedAttempts() {
	c.FailedAttempts = 0
	c.LockedUntil = nil
}

// RevokeSessions invalidates every token issued so far.
func (c *Credential) RevokeSessions() {
	c.SessionVersion++
}

func (c *Credential) TableName() string {
	return "credentials"
}
