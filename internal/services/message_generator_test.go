package services

import (
	"context"
	"testing"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/parser"
	"sms-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneratorConfig() GeneratorConfig {
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	return GeneratorConfig{
		NoiseRatio:     0.2,
		DuplicateRatio: 0.1,
		Start:          end.AddDate(0, 0, -30),
		End:            end,
	}
}

func TestMessageGenerator_SameSeedSameStream(t *testing.T) {
	first := NewMessageGenerator(42, testGeneratorConfig()).Generate(50)
	second := NewMessageGenerator(42, testGeneratorConfig()).Generate(50)
	other := NewMessageGenerator(43, testGeneratorConfig()).Generate(50)

	assert.Equal(t, Texts(first), Texts(second))
	assert.NotEqual(t, Texts(first), Texts(other))
	assert.Len(t, first, 50)
}

func TestMessageGenerator_TimestampsWithinWindow(t *testing.T) {
	cfg := testGeneratorConfig()
	for _, msg := range NewMessageGenerator(7, cfg).Generate(100) {
		assert.False(t, msg.ReceivedAt.Before(cfg.Start.Truncate(24*time.Hour)), msg.Text)
		assert.True(t, msg.ReceivedAt.Before(cfg.End.Add(24*time.Hour)), msg.Text)
	}
}

func TestMessageGenerator_ParserRecoversGeneratedFields(t *testing.T) {
	p := parser.New(parser.WithRandomSource(parser.NoPerturbation))

	for _, msg := range NewMessageGenerator(2025, testGeneratorConfig()).Generate(300) {
		require.Equal(t, msg.IsTransaction, p.IsTransactionMessage(msg.Text), msg.Text)
		if !msg.IsTransaction {
			continue
		}

		result := p.Parse(msg.Text)
		require.NotNil(t, result.Amount, msg.Text)
		assert.True(t, msg.Amount.Equal(*result.Amount), "%s: got %s", msg.Text, result.Amount)
		assert.Equal(t, msg.Type, string(result.Type), msg.Text)
		assert.Equal(t, msg.Reference, result.ReferenceNumber, msg.Text)
		if msg.Category != "" {
			assert.Equal(t, msg.Category, result.Metadata.Category, msg.Text)
		}
		if msg.Merchant != "" {
			assert.Equal(t, msg.Merchant, result.MerchantName, msg.Text)
		}
	}
}

func TestMessageGenerator_NoDuplicatesWhenRatioZero(t *testing.T) {
	cfg := testGeneratorConfig()
	cfg.DuplicateRatio = 0
	cfg.NoiseRatio = 0

	seen := map[string]bool{}
	for _, msg := range NewMessageGenerator(9, cfg).Generate(200) {
		require.True(t, msg.IsTransaction)
		assert.False(t, seen[msg.Reference], msg.Reference)
		seen[msg.Reference] = true
	}
}

func TestMessageGenerator_StreamIngestsCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledgerRepo, _ := newEncryptedLedger(t)

	auditLogger := service_mocks.NewMockAuditLoggerInterface(ctrl)
	auditLogger.EXPECT().LogMessageIngested(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	auditLogger.EXPECT().LogMessageSkipped(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	auditLogger.EXPECT().LogDuplicateMessage(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	service := NewIngestionService(parser.New(), ledgerRepo, auditLogger, metrics, 0.8, discardLogger())

	generated := NewMessageGenerator(11, testGeneratorConfig()).Generate(40)
	reqs := make([]dto.IngestMessageRequest, len(generated))
	references := map[string]bool{}
	noise := 0
	for i, msg := range generated {
		receivedAt := msg.ReceivedAt
		reqs[i] = dto.IngestMessageRequest{Message: msg.Text, ReceivedAt: &receivedAt}
		if msg.IsTransaction {
			references[msg.Reference] = true
		} else {
			noise++
		}
	}

	results, err := service.IngestBatch(context.Background(), reqs)
	require.NoError(t, err)

	summary := dto.NewIngestBatchResponse(results)
	assert.Equal(t, len(references), summary.Stored)
	assert.Equal(t, noise, summary.Skipped)
	assert.Equal(t, len(generated)-len(references)-noise, summary.Duplicates)
	assert.Zero(t, summary.Failed)
}
