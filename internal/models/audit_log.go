package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionPINSet           = "pin_set"
	AuditActionPINChanged       = "pin_changed"
	AuditActionUnlockSucceeded  = "unlock_succeeded"
	AuditActionUnlockFailed     = "unlock_failed"
	AuditActionLockout          = "lockout"
	AuditActionLocked           = "locked"
	AuditActionBiometricChanged = "biometric_changed"
	AuditActionEntryReviewed    = "entry_reviewed"
	AuditActionEntryDeleted     = "entry_deleted"
	AuditActionLedgerExported   = "ledger_exported"
)

const (
	AuditResourceAuth   = "auth"
	AuditResourceLedger = "ledger"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string    `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string    `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("AuditLog[Action: %s, Resource: %s/%s, IP: %s, Time: %s]",
		al.Action, al.Resource, al.ResourceID, al.IPAddress, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// IsValidAuditAction checks if the action is one the service records
func IsValidAuditAction(action string) bool {
	switch action {
	case AuditActionPINSet, AuditActionPINChanged, AuditActionUnlockSucceeded,
		AuditActionUnlockFailed, AuditActionLockout, AuditActionLocked,
		AuditActionBiometricChanged, AuditActionEntryReviewed, AuditActionEntryDeleted,
		AuditActionLedgerExported:
		return true
	default:
		return false
	}
}

// JSONBMap is a JSON object column stored as text so it works on SQLite and PostgreSQL.
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
