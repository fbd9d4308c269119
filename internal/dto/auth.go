package dto

import "time"

// Auth Request DTOs

// SetPINRequest sets the first PIN, or changes it when CurrentPIN is supplied
type SetPINRequest struct {
	PIN        string `json:"pin" validate:"required,pin"`
	CurrentPIN string `json:"current_pin,omitempty" validate:"omitempty,pin"`
}

// UnlockRequest contains the PIN entered on the lock screen
type UnlockRequest struct {
	PIN string `json:"pin" validate:"required,pin"`
}

// BiometricRequest toggles biometric unlock
type BiometricRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Auth Response DTOs

// SessionResponse contains the session token issued by an unlock
type SessionResponse struct {
	Token        string    `json:"token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	UnlockMethod string    `json:"unlock_method"`
}

// AuthStatusResponse describes the state of the PIN gate
type AuthStatusResponse struct {
	PINConfigured    bool       `json:"pin_configured"`
	BiometricEnabled bool       `json:"biometric_enabled"`
	LockedOut        bool       `json:"locked_out"`
	LockedUntil      *time.Time `json:"locked_until,omitempty"`
	FailedAttempts   int        `json:"failed_attempts"`
	AttemptsLeft     int        `json:"attempts_left"`
	// RecentFailedUnlocks counts wrong PINs in the audit trail over the last day
	RecentFailedUnlocks int64 `json:"recent_failed_unlocks"`
}
