package repositories

import (
	"context"
	"testing"
	"time"

	"sms-ledger/internal/database"
	"sms-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
	ctx  context.Context
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) createLog(action string, createdAt time.Time) {
	log := &models.AuditLog{
		Action:    action,
		Resource:  models.AuditResourceAuth,
		IPAddress: "192.168.1.1",
		UserAgent: "Mozilla/5.0",
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.repo.Create(s.ctx, log))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	log := &models.AuditLog{
		Action:     models.AuditActionPINSet,
		Resource:   models.AuditResourceAuth,
		ResourceID: "credential",
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
		Metadata:   models.JSONBMap{"length": float64(6)},
	}

	err := s.repo.Create(s.ctx, log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)

	logs, _, err := s.repo.List(s.ctx, models.AuditActionPINSet, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(float64(6), logs[0].GetMetadata("length", 0))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateNil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListByAction() {
	now := time.Now()
	s.createLog(models.AuditActionUnlockFailed, now.Add(-3*time.Minute))
	s.createLog(models.AuditActionUnlockFailed, now.Add(-2*time.Minute))
	s.createLog(models.AuditActionUnlockSucceeded, now.Add(-time.Minute))

	logs, total, err := s.repo.List(s.ctx, models.AuditActionUnlockFailed, 0, 10)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(2), total)
	for _, log := range logs {
		s.Equal(models.AuditActionUnlockFailed, log.Action)
	}

	all, total, err := s.repo.List(s.ctx, "", 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Equal(models.AuditActionUnlockSucceeded, all[0].Action, "newest first")
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListPagination() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		s.createLog(models.AuditActionLocked, now.Add(time.Duration(i)*time.Second))
	}

	logs, total, err := s.repo.List(s.ctx, models.AuditActionLocked, 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)

	logs, _, err = s.repo.List(s.ctx, models.AuditActionLocked, 4, 2)
	s.NoError(err)
	s.Len(logs, 1)

	logs, _, err = s.repo.List(s.ctx, models.AuditActionLocked, -1, 0)
	s.NoError(err)
	s.Len(logs, 5, "invalid paging falls back to defaults")
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CountSince() {
	now := time.Now()
	s.createLog(models.AuditActionUnlockFailed, now.Add(-2*time.Hour))
	s.createLog(models.AuditActionUnlockFailed, now.Add(-10*time.Minute))
	s.createLog(models.AuditActionUnlockFailed, now.Add(-5*time.Minute))
	s.createLog(models.AuditActionLockout, now.Add(-time.Minute))

	count, err := s.repo.CountSince(s.ctx, models.AuditActionUnlockFailed, now.Add(-time.Hour))
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_DeleteOlderThan() {
	now := time.Now()
	s.createLog(models.AuditActionLocked, now.Add(-48*time.Hour))
	s.createLog(models.AuditActionLocked, now.Add(-36*time.Hour))
	s.createLog(models.AuditActionLocked, now)

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.NoError(err)
	s.Equal(int64(2), deleted)

	_, total, err := s.repo.List(s.ctx, "", 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}
