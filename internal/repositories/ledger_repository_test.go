package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"sms-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// memoryStore is a plaintext KeyValueStore for exercising the ledger layout.
type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func TestLedgerRepository(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

type LedgerRepositorySuite struct {
	suite.Suite
	store *memoryStore
	repo  LedgerRepositoryInterface
	ctx   context.Context
	now   time.Time
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.store = newMemoryStore()
	s.repo = NewLedgerRepository(s.store)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *LedgerRepositorySuite) newEntry(reference string, amount int64, occurred time.Time) *models.LedgerEntry {
	entry := &models.LedgerEntry{
		Amount:          decimal.NewFromInt(amount),
		Type:            models.LedgerTypeExpense,
		Category:        "Food",
		Description:     "Payment to ZOMATO",
		MerchantName:    "ZOMATO",
		ReferenceNumber: reference,
		Confidence:      0.9,
		Status:          models.LedgerStatusConfirmed,
		OccurredAt:      occurred,
	}
	s.Require().NoError(entry.Prepare(s.now))
	return entry
}

func (s *LedgerRepositorySuite) TestCreateAndGet() {
	entry := s.newEntry("UTR123456789", 450, s.now)

	s.Require().NoError(s.repo.Create(s.ctx, entry))

	stored, err := s.repo.GetByID(s.ctx, entry.ID)
	s.Require().NoError(err)
	s.Equal(entry.ID, stored.ID)
	s.True(entry.Amount.Equal(stored.Amount))
	s.Equal("ZOMATO", stored.MerchantName)

	s.Contains(s.store.values, "ledger/"+entry.ID.String())
	s.Equal(entry.ID.String(), s.store.values["ledger-ref/UTR123456789"])
}

func (s *LedgerRepositorySuite) TestCreate_DuplicateReference() {
	first := s.newEntry("UTR123456789", 450, s.now)
	s.Require().NoError(s.repo.Create(s.ctx, first))

	second := s.newEntry("utr123456789", 450, s.now)
	err := s.repo.Create(s.ctx, second)

	s.ErrorIs(err, ErrDuplicateReference)
	_, err = s.repo.GetByID(s.ctx, second.ID)
	s.ErrorIs(err, ErrEntryNotFound)
}

func (s *LedgerRepositorySuite) TestCreate_WithoutReferenceNeverCollides() {
	s.NoError(s.repo.Create(s.ctx, s.newEntry("", 10, s.now)))
	s.NoError(s.repo.Create(s.ctx, s.newEntry("", 10, s.now)))

	_, total, err := s.repo.List(s.ctx, models.LedgerFilters{})
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *LedgerRepositorySuite) TestCreate_WordReferenceIsNotIndexed() {
	first := s.newEntry("purposes", 10, s.now)
	s.NoError(s.repo.Create(s.ctx, first))
	s.NoError(s.repo.Create(s.ctx, s.newEntry("purposes", 20, s.now)))

	_, err := s.repo.FindByReference(s.ctx, "purposes")
	s.ErrorIs(err, ErrEntryNotFound)

	first.ReferenceNumber = "UTR000000123"
	s.NoError(s.repo.Update(s.ctx, first))
	found, err := s.repo.FindByReference(s.ctx, "UTR000000123")
	s.Require().NoError(err)
	s.Equal(first.ID, found.ID)

	s.NoError(s.repo.Delete(s.ctx, first.ID))
	_, err = s.repo.FindByReference(s.ctx, "UTR000000123")
	s.ErrorIs(err, ErrEntryNotFound)
}

func (s *LedgerRepositorySuite) TestCreate_Invalid() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, &models.LedgerEntry{}))
}

func (s *LedgerRepositorySuite) TestFindByReference() {
	entry := s.newEntry("AXIS00012345", 99, s.now)
	s.Require().NoError(s.repo.Create(s.ctx, entry))

	found, err := s.repo.FindByReference(s.ctx, " axis00012345 ")
	s.Require().NoError(err)
	s.Equal(entry.ID, found.ID)

	_, err = s.repo.FindByReference(s.ctx, "NOPE12345678")
	s.ErrorIs(err, ErrEntryNotFound)

	_, err = s.repo.FindByReference(s.ctx, "")
	s.ErrorIs(err, ErrEntryNotFound)
}

func (s *LedgerRepositorySuite) TestGetByID_StoreError() {
	s.store.getErr = errors.New("decrypt failed")

	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.Error(err)
	s.NotErrorIs(err, ErrEntryNotFound)
}

func (s *LedgerRepositorySuite) TestList_SortedAndPaginated() {
	oldest := s.newEntry("REF000000001", 10, s.now.Add(-2*time.Hour))
	middle := s.newEntry("REF000000002", 20, s.now.Add(-time.Hour))
	newest := s.newEntry("REF000000003", 30, s.now)
	for _, e := range []*models.LedgerEntry{middle, oldest, newest} {
		s.Require().NoError(s.repo.Create(s.ctx, e))
	}

	entries, total, err := s.repo.List(s.ctx, models.LedgerFilters{})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal([]uuid.UUID{newest.ID, middle.ID, oldest.ID}, ids(entries))

	page, total, err := s.repo.List(s.ctx, models.LedgerFilters{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal([]uuid.UUID{middle.ID}, ids(page))

	empty, _, err := s.repo.List(s.ctx, models.LedgerFilters{Offset: 10})
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *LedgerRepositorySuite) TestList_Filters() {
	confirmed := s.newEntry("REF000000001", 10, s.now)
	review := s.newEntry("REF000000002", 20, s.now)
	review.Status = models.LedgerStatusNeedsReview
	review.Type = models.LedgerTypeIncome
	s.Require().NoError(s.repo.Create(s.ctx, confirmed))
	s.Require().NoError(s.repo.Create(s.ctx, review))

	entries, total, err := s.repo.List(s.ctx, models.LedgerFilters{Status: models.LedgerStatusNeedsReview})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(review.ID, entries[0].ID)

	entries, _, err = s.repo.List(s.ctx, models.LedgerFilters{Type: models.LedgerTypeExpense})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{confirmed.ID}, ids(entries))
}

func (s *LedgerRepositorySuite) TestUpdate_MovesReferenceIndex() {
	entry := s.newEntry("OLDREF000001", 10, s.now)
	s.Require().NoError(s.repo.Create(s.ctx, entry))

	entry.ReferenceNumber = "NEWREF000001"
	entry.Description = "Payment to SWIGGY"
	s.Require().NoError(s.repo.Update(s.ctx, entry))

	_, err := s.repo.FindByReference(s.ctx, "OLDREF000001")
	s.ErrorIs(err, ErrEntryNotFound)

	found, err := s.repo.FindByReference(s.ctx, "NEWREF000001")
	s.Require().NoError(err)
	s.Equal("Payment to SWIGGY", found.Description)
}

func (s *LedgerRepositorySuite) TestUpdate_ReferenceTakenByAnotherEntry() {
	first := s.newEntry("FIRSTREF0001", 10, s.now)
	second := s.newEntry("SECONDREF001", 10, s.now)
	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, second))

	second.ReferenceNumber = "FIRSTREF0001"
	s.ErrorIs(s.repo.Update(s.ctx, second), ErrDuplicateReference)
}

func (s *LedgerRepositorySuite) TestUpdate_NotFound() {
	s.ErrorIs(s.repo.Update(s.ctx, s.newEntry("", 10, s.now)), ErrEntryNotFound)
}

func (s *LedgerRepositorySuite) TestDelete() {
	entry := s.newEntry("DELREF000001", 10, s.now)
	s.Require().NoError(s.repo.Create(s.ctx, entry))

	s.Require().NoError(s.repo.Delete(s.ctx, entry.ID))

	s.Empty(s.store.values)
	s.ErrorIs(s.repo.Delete(s.ctx, entry.ID), ErrEntryNotFound)
}

func ids(entries []*models.LedgerEntry) []uuid.UUID {
	out := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
