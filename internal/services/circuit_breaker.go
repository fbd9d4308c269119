package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrStorageUnavailable = errors.New("ledger storage is unavailable")
)

const (
	StateClosed   = models.CircuitStateClosed
	StateOpen     = models.CircuitStateOpen
	StateHalfOpen = models.CircuitStateHalfOpen
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// IsOpen reports whether calls should be refused. An open breaker whose reset
// timeout has elapsed moves to half-open and lets calls through.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transitionToClosed()
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.transitionToOpen()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transitionToOpen()
		}
	}
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.state = StateClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.state = StateOpen
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.transitionToClosed()
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// GuardedLedgerRepository fails fast with ErrStorageUnavailable while the
// encrypted store keeps erroring. Not-found and duplicate results are answers,
// not failures, and never trip the breaker.
type GuardedLedgerRepository struct {
	next    repositories.LedgerRepositoryInterface
	breaker CircuitBreakerInterface
}

func NewGuardedLedgerRepository(next repositories.LedgerRepositoryInterface, breaker CircuitBreakerInterface) repositories.LedgerRepositoryInterface {
	return &GuardedLedgerRepository{next: next, breaker: breaker}
}

func (g *GuardedLedgerRepository) guard(call func() error) error {
	if g.breaker.IsOpen() {
		return ErrStorageUnavailable
	}

	err := call()
	switch {
	case err == nil,
		errors.Is(err, repositories.ErrEntryNotFound),
		errors.Is(err, repositories.ErrDuplicateReference),
		errors.Is(err, context.Canceled):
		g.breaker.RecordSuccess()
	default:
		g.breaker.RecordFailure()
	}
	return err
}

func (g *GuardedLedgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	return g.guard(func() error { return g.next.Create(ctx, entry) })
}

func (g *GuardedLedgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry
	err := g.guard(func() (err error) {
		entry, err = g.next.GetByID(ctx, id)
		return err
	})
	return entry, err
}

func (g *GuardedLedgerRepository) FindByReference(ctx context.Context, reference string) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry
	err := g.guard(func() (err error) {
		entry, err = g.next.FindByReference(ctx, reference)
		return err
	})
	return entry, err
}

func (g *GuardedLedgerRepository) List(ctx context.Context, filters models.LedgerFilters) ([]*models.LedgerEntry, int64, error) {
	var (
		entries []*models.LedgerEntry
		total   int64
	)
	err := g.guard(func() (err error) {
		entries, total, err = g.next.List(ctx, filters)
		return err
	})
	return entries, total, err
}

func (g *GuardedLedgerRepository) Update(ctx context.Context, entry *models.LedgerEntry) error {
	return g.guard(func() error { return g.next.Update(ctx, entry) })
}

func (g *GuardedLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return g.guard(func() error { return g.next.Delete(ctx, id) })
}
