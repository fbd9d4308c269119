package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/repositories"
	"sms-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	ctx              context.Context
	ledgerRepo       repositories.LedgerRepositoryInterface
	mockAuditService *service_mocks.MockAuditServiceInterface
	mockMetrics      *service_mocks.MockMetricsRecorderInterface
	service          ExportServiceInterface
	now              time.Time
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2025, 9, 26, 12, 0, 0, 0, time.UTC)
	s.ledgerRepo, _ = newEncryptedLedger(s.T())
	s.mockAuditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewExportService(s.ledgerRepo, s.mockAuditService, s.mockMetrics, discardLogger())
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportServiceTestSuite) seed(amount, merchant, status string, occurred time.Time) *models.LedgerEntry {
	entry := &models.LedgerEntry{
		Amount:          decimal.RequireFromString(amount),
		Type:            models.LedgerTypeExpense,
		MerchantName:    merchant,
		Category:        "Food",
		Description:     "Payment to " + merchant + ", Bangalore",
		Confidence:      0.75,
		Status:          status,
		OccurredAt:      occurred,
	}
	s.Require().NoError(entry.Prepare(s.now))
	s.Require().NoError(s.ledgerRepo.Create(s.ctx, entry))
	return entry
}

func (s *ExportServiceTestSuite) TestExport_CSV() {
	newer := s.seed("450", "ZOMATO", models.LedgerStatusConfirmed, s.now.Add(-time.Hour))
	s.seed("120.5", "SWIGGY", models.LedgerStatusNeedsReview, s.now.Add(-48*time.Hour))

	s.mockMetrics.EXPECT().IncrementCounter(MetricLedgerExported, map[string]string{"format": dto.ExportFormatCSV})
	s.mockAuditService.EXPECT().LogLedgerExported(s.ctx, dto.ExportFormatCSV, 2, "127.0.0.1", "ua").Return(nil)

	var buf bytes.Buffer
	count, err := s.service.Export(s.ctx, &buf, "CSV", models.LedgerFilters{Limit: 1}, "127.0.0.1", "ua")
	s.Require().NoError(err)
	s.Equal(2, count)

	records, err := csv.NewReader(&buf).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(csvHeader, records[0])

	first := records[1]
	s.Equal(newer.ID.String(), first[0])
	s.Equal("2025-09-26T11:00:00Z", first[1])
	s.Equal("450.00", first[3])
	s.Equal("ZOMATO", first[4])
	s.Equal("Payment to ZOMATO, Bangalore", first[6])
	s.Equal(models.LedgerStatusConfirmed, first[10])
	s.Equal("0.75", first[11])
	s.Equal("120.50", records[2][3])
}

func (s *ExportServiceTestSuite) TestExport_JSONWithFilter() {
	s.seed("450", "ZOMATO", models.LedgerStatusConfirmed, s.now.Add(-time.Hour))
	s.seed("120.5", "SWIGGY", models.LedgerStatusNeedsReview, s.now.Add(-48*time.Hour))

	s.mockMetrics.EXPECT().IncrementCounter(MetricLedgerExported, map[string]string{"format": dto.ExportFormatJSON})
	s.mockAuditService.EXPECT().LogLedgerExported(s.ctx, dto.ExportFormatJSON, 1, "", "").Return(nil)

	var buf bytes.Buffer
	count, err := s.service.Export(s.ctx, &buf, dto.ExportFormatJSON, models.LedgerFilters{Status: models.LedgerStatusNeedsReview}, "", "")
	s.Require().NoError(err)
	s.Equal(1, count)

	var decoded []models.LedgerEntry
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Require().Len(decoded, 1)
	s.Equal("SWIGGY", decoded[0].MerchantName)
	s.True(decoded[0].Amount.Equal(decimal.RequireFromString("120.50")))
}

func (s *ExportServiceTestSuite) TestExport_EmptyLedgerJSONIsEmptyArray() {
	s.mockMetrics.EXPECT().IncrementCounter(MetricLedgerExported, gomock.Any())
	s.mockAuditService.EXPECT().LogLedgerExported(s.ctx, dto.ExportFormatJSON, 0, "", "").Return(nil)

	var buf bytes.Buffer
	count, err := s.service.Export(s.ctx, &buf, dto.ExportFormatJSON, models.LedgerFilters{}, "", "")
	s.Require().NoError(err)
	s.Zero(count)
	s.JSONEq("[]", buf.String())
}

func (s *ExportServiceTestSuite) TestExport_InvalidFormat() {
	var buf bytes.Buffer
	_, err := s.service.Export(s.ctx, &buf, "xlsx", models.LedgerFilters{}, "", "")
	s.ErrorIs(err, ErrInvalidExportFormat)
	s.Zero(buf.Len())
}

func (s *ExportServiceTestSuite) TestExport_InvalidFilters() {
	var buf bytes.Buffer
	_, err := s.service.Export(s.ctx, &buf, dto.ExportFormatCSV, models.LedgerFilters{Status: "pending"}, "", "")
	s.ErrorIs(err, models.ErrInvalidLedgerStatus)
}

func (s *ExportServiceTestSuite) TestExport_AuditFailureStillExports() {
	s.seed("450", "ZOMATO", models.LedgerStatusConfirmed, s.now.Add(-time.Hour))

	s.mockMetrics.EXPECT().IncrementCounter(MetricLedgerExported, gomock.Any())
	s.mockAuditService.EXPECT().LogLedgerExported(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("audit store down"))

	var buf bytes.Buffer
	count, err := s.service.Export(s.ctx, &buf, dto.ExportFormatCSV, models.LedgerFilters{}, "", "")
	s.Require().NoError(err)
	s.Equal(1, count)
}
