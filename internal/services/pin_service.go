package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"sms-ledger/internal/config"
	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPINNotSet         = errors.New("PIN has not been set")
	ErrPINAlreadySet     = errors.New("PIN is already set")
	ErrInvalidPIN        = errors.New("incorrect PIN")
	ErrLockedOut         = errors.New("too many failed attempts")
	ErrBiometricDisabled = errors.New("biometric unlock is not enabled")
	ErrSamePIN           = errors.New("new PIN must be different from current PIN")

	ErrPINEmpty      = errors.New("PIN cannot be empty")
	ErrPINNotNumeric = errors.New("PIN must contain digits only")
	ErrPINLength     = errors.New("PIN length out of range")
	ErrPINRepeated   = errors.New("PIN cannot repeat a single digit")
	ErrPINSequential = errors.New("PIN cannot be a sequential run of digits")

	pinDigitsRegex = regexp.MustCompile(`^[0-9]+$`)
)

const failedUnlockWindow = 24 * time.Hour

// PINService guards the ledger behind a PIN and optional biometric unlock
type PINService struct {
	credentialRepo repositories.CredentialRepositoryInterface
	tokenService   TokenServiceInterface
	auditService   AuditServiceInterface
	auditLogger    AuditLoggerInterface
	metrics        MetricsRecorderInterface
	security       config.SecurityConfig
	logger         *slog.Logger
	now            func() time.Time
	mu             sync.Mutex
}

// NewPINService creates a new PIN service
func NewPINService(
	credentialRepo repositories.CredentialRepositoryInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	security config.SecurityConfig,
	logger *slog.Logger,
) PINServiceInterface {
	return &PINService{
		credentialRepo: credentialRepo,
		tokenService:   tokenService,
		auditService:   auditService,
		auditLogger:    auditLogger,
		metrics:        metrics,
		security:       security,
		logger:         logger,
		now:            time.Now,
	}
}

// ValidatePIN checks length bounds and rejects trivially guessable PINs
func (s *PINService) ValidatePIN(pin string) error {
	if pin == "" {
		return ErrPINEmpty
	}

	if !pinDigitsRegex.MatchString(pin) {
		return ErrPINNotNumeric
	}

	if len(pin) < s.security.PINMinLength || len(pin) > s.security.PINMaxLength {
		return fmt.Errorf("%w: must be %d-%d digits", ErrPINLength, s.security.PINMinLength, s.security.PINMaxLength)
	}

	if isRepeatedDigit(pin) {
		return ErrPINRepeated
	}

	if isSequentialRun(pin) {
		return ErrPINSequential
	}

	return nil
}

// SetPIN stores the first PIN. Changing an existing PIN goes through ChangePIN.
func (s *PINService) SetPIN(ctx context.Context, pin, ipAddress, userAgent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.credentialRepo.Get(ctx)
	if err != nil && !errors.Is(err, repositories.ErrCredentialNotFound) {
		return fmt.Errorf("failed to load credential: %w", err)
	}
	if existing != nil {
		return ErrPINAlreadySet
	}

	if err := s.ValidatePIN(pin); err != nil {
		return err
	}

	hash, err := s.hashPIN(pin)
	if err != nil {
		return err
	}

	now := s.now()
	credential := &models.Credential{
		PINHash:        hash,
		SessionVersion: 1,
		PINUpdatedAt:   now,
	}
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	s.recordAuthEvent(ctx, models.AuditActionPINSet, "")
	s.audit(ctx, models.AuditActionPINSet, s.auditService.LogPINSet(ctx, ipAddress, userAgent))
	return nil
}

// ChangePIN replaces the PIN after verifying the current one. Outstanding sessions are revoked.
func (s *PINService) ChangePIN(ctx context.Context, currentPIN, newPIN, ipAddress, userAgent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.loadCredential(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	if credential.IsLockedOut(now) {
		return fmt.Errorf("%w: locked until %s", ErrLockedOut, credential.LockedUntil.Format(time.RFC3339))
	}

	if !comparePIN(currentPIN, credential.PINHash) {
		return s.registerFailure(ctx, credential, UnlockMethodPIN, ipAddress, userAgent)
	}

	if currentPIN == newPIN {
		return ErrSamePIN
	}

	if err := s.ValidatePIN(newPIN); err != nil {
		return err
	}

	hash, err := s.hashPIN(newPIN)
	if err != nil {
		return err
	}

	credential.PINHash = hash
	credential.PINUpdatedAt = now
	credential.ResetFailedAttempts()
	credential.RevokeSessions()
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	s.recordAuthEvent(ctx, models.AuditActionPINChanged, "")
	s.audit(ctx, models.AuditActionPINChanged, s.auditService.LogPINChanged(ctx, ipAddress, userAgent))
	return nil
}

// Unlock verifies the PIN and issues a session token
func (s *PINService) Unlock(ctx context.Context, pin, ipAddress, userAgent string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.loadCredential(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if credential.IsLockedOut(now) {
		s.recordAuthEvent(ctx, models.AuditActionUnlockFailed, UnlockMethodPIN)
		s.audit(ctx, models.AuditActionUnlockFailed,
			s.auditService.LogUnlockFailed(ctx, UnlockMethodPIN, "locked_out", ipAddress, userAgent))
		return nil, fmt.Errorf("%w: locked until %s", ErrLockedOut, credential.LockedUntil.Format(time.RFC3339))
	}

	if !comparePIN(pin, credential.PINHash) {
		return nil, s.registerFailure(ctx, credential, UnlockMethodPIN, ipAddress, userAgent)
	}

	if credential.FailedAttempts > 0 || credential.LockedUntil != nil {
		credential.ResetFailedAttempts()
		if err := s.credentialRepo.Save(ctx, credential); err != nil {
			// Non-critical: the PIN was correct
			s.logger.WarnContext(ctx, "failed to reset unlock attempts", "error", err)
		}
	}

	return s.issueSession(ctx, credential, UnlockMethodPIN, ipAddress, userAgent)
}

// UnlockWithBiometric issues a session after the platform verified the user's biometrics
func (s *PINService) UnlockWithBiometric(ctx context.Context, ipAddress, userAgent string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.loadCredential(ctx)
	if err != nil {
		return nil, err
	}

	if credential.IsLockedOut(s.now()) {
		s.recordAuthEvent(ctx, models.AuditActionUnlockFailed, UnlockMethodBiometric)
		s.audit(ctx, models.AuditActionUnlockFailed,
			s.auditService.LogUnlockFailed(ctx, UnlockMethodBiometric, "locked_out", ipAddress, userAgent))
		return nil, ErrLockedOut
	}

	if !credential.BiometricEnabled {
		s.audit(ctx, models.AuditActionUnlockFailed,
			s.auditService.LogUnlockFailed(ctx, UnlockMethodBiometric, "biometric_disabled", ipAddress, userAgent))
		return nil, ErrBiometricDisabled
	}

	return s.issueSession(ctx, credential, UnlockMethodBiometric, ipAddress, userAgent)
}

// SetBiometric enables or disables biometric unlock
func (s *PINService) SetBiometric(ctx context.Context, enabled bool, ipAddress, userAgent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.loadCredential(ctx)
	if err != nil {
		return err
	}

	if credential.BiometricEnabled == enabled {
		return nil
	}

	credential.BiometricEnabled = enabled
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	s.audit(ctx, models.AuditActionBiometricChanged,
		s.auditService.LogBiometricChanged(ctx, enabled, ipAddress, userAgent))
	return nil
}

// Lock ends every outstanding session
func (s *PINService) Lock(ctx context.Context, ipAddress, userAgent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.loadCredential(ctx)
	if err != nil {
		return err
	}

	credential.RevokeSessions()
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	s.recordAuthEvent(ctx, models.AuditActionLocked, "")
	s.audit(ctx, models.AuditActionLocked, s.auditService.LogLocked(ctx, ipAddress, userAgent))
	return nil
}

// IsUnlocked reports whether token is a live session: valid signature, unexpired,
// current session version and no active lockout.
func (s *PINService) IsUnlocked(ctx context.Context, token string) bool {
	claims, err := s.tokenService.ValidateSessionToken(token)
	if err != nil {
		return false
	}

	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrCredentialNotFound) {
			s.logger.ErrorContext(ctx, "failed to load credential for session check", "error", err)
		}
		return false
	}

	return claims.SessionVersion == credential.SessionVersion && !credential.IsLockedOut(s.now())
}

// Status describes whether a PIN exists and whether unlock is currently refused
func (s *PINService) Status(ctx context.Context) (*dto.AuthStatusResponse, error) {
	credential, err := s.credentialRepo.Get(ctx)
	if errors.Is(err, repositories.ErrCredentialNotFound) {
		return &dto.AuthStatusResponse{AttemptsLeft: s.security.MaxFailedAttempts}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	status := &dto.AuthStatusResponse{
		PINConfigured:    true,
		BiometricEnabled: credential.BiometricEnabled,
		FailedAttempts:   credential.FailedAttempts,
		AttemptsLeft:     max(s.security.MaxFailedAttempts-credential.FailedAttempts, 0),
	}
	if credential.IsLockedOut(s.now()) {
		status.LockedOut = true
		status.LockedUntil = credential.LockedUntil
	}

	recent, err := s.auditService.CountFailedUnlocksSince(ctx, s.now().Add(-failedUnlockWindow))
	if err != nil {
		s.logger.WarnContext(ctx, "failed to count recent unlock failures", "error", err)
	}
	status.RecentFailedUnlocks = recent
	return status, nil
}

func (s *PINService) loadCredential(ctx context.Context) (*models.Credential, error) {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return nil, ErrPINNotSet
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	return credential, nil
}

// registerFailure counts a wrong PIN and returns the error the caller should report
func (s *PINService) registerFailure(ctx context.Context, credential *models.Credential, method, ipAddress, userAgent string) error {
	now := s.now()
	lockedOut := credential.RegisterFailure(s.security.MaxFailedAttempts, s.security.LockoutDuration, now)
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		s.logger.ErrorContext(ctx, "failed to record unlock attempt", "error", err)
	}

	s.recordAuthEvent(ctx, models.AuditActionUnlockFailed, method)
	s.audit(ctx, models.AuditActionUnlockFailed,
		s.auditService.LogUnlockFailed(ctx, method, "wrong_pin", ipAddress, userAgent))

	if !lockedOut {
		return ErrInvalidPIN
	}

	s.auditLogger.LogLockout(ctx, *credential.LockedUntil)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": models.AuditActionLockout})
	s.audit(ctx, models.AuditActionLockout,
		s.auditService.LogLockout(ctx, *credential.LockedUntil, ipAddress, userAgent))
	return fmt.Errorf("%w: locked until %s", ErrLockedOut, credential.LockedUntil.Format(time.RFC3339))
}

func (s *PINService) issueSession(ctx context.Context, credential *models.Credential, method, ipAddress, userAgent string) (*dto.SessionResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateSessionToken(credential, method)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.recordAuthEvent(ctx, models.AuditActionUnlockSucceeded, method)
	s.audit(ctx, models.AuditActionUnlockSucceeded, s.auditService.LogUnlock(ctx, method, ipAddress, userAgent))

	return &dto.SessionResponse{
		Token:        token,
		TokenType:    sessionTokenType,
		ExpiresAt:    expiresAt,
		UnlockMethod: method,
	}, nil
}

func (s *PINService) hashPIN(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), s.security.BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hashed), nil
}

func (s *PINService) recordAuthEvent(ctx context.Context, eventType, method string) {
	s.auditLogger.LogAuthEvent(ctx, eventType, method)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": eventType})
}

// audit logs a failed audit write. Audit failures never block the PIN gate.
func (s *PINService) audit(ctx context.Context, action string, err error) {
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log", "error", err, "action", action)
	}
}

func comparePIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

func isRepeatedDigit(pin string) bool {
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			return false
		}
	}
	return true
}

// isSequentialRun matches straight ascending or descending runs such as 1234 or 8765
func isSequentialRun(pin string) bool {
	if len(pin) < 2 {
		return false
	}
	step := int(pin[1]) - int(pin[0])
	if step != 1 && step != -1 {
		return false
	}
	for i := 2; i < len(pin); i++ {
		if int(pin[i])-int(pin[i-1]) != step {
			return false
		}
	}
	return true
}
