package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/errors"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services"
	"sms-ledger/internal/services/service_mocks"
	"sms-ledger/internal/storage"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler       *TransactionHandler
	echo          *echo.Echo
	ctrl          *gomock.Controller
	ledgerService *service_mocks.MockLedgerServiceInterface
	exportService *service_mocks.MockExportServiceInterface
	faker         *gofakeit.Faker
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.ledgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.exportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.ledgerService, s.exportService)
	s.handler.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }
	s.faker = gofakeit.New(42)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newEntry() *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:           uuid.New(),
		Amount:       decimal.NewFromFloat(s.faker.Float64Range(10, 5000)).Round(2),
		Type:         models.LedgerTypeExpense,
		MerchantName: s.faker.Company(),
		Category:     "Food",
		Description:  "Payment to merchant",
		OccurredAt:   s.faker.DateRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		Confidence:   0.9,
		Status:       models.LedgerStatusConfirmed,
		Source:       models.SourceSMS,
	}
}

func (s *TransactionHandlerTestSuite) request(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// Pagination Tests

func (s *TransactionHandlerTestSuite) TestListTransactions_FirstPage() {
	entries := make([]*models.LedgerEntry, dto.DefaultPageLimit)
	for i := range entries {
		entries[i] = s.newEntry()
	}

	s.ledgerService.EXPECT().
		List(gomock.Any(), models.LedgerFilters{Offset: 0, Limit: dto.DefaultPageLimit}).
		Return(entries, int64(21), nil)

	c, rec := s.request(http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, dto.DefaultPageLimit)
	s.True(response.Pagination.HasMore)
	s.Equal(dto.DefaultPageLimit, response.Pagination.Limit)
	s.Equal(int64(21), response.Pagination.Total)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_LastPage() {
	s.ledgerService.EXPECT().
		List(gomock.Any(), models.LedgerFilters{Offset: 20, Limit: 20}).
		Return([]*models.LedgerEntry{s.newEntry()}, int64(21), nil)

	c, rec := s.request(http.MethodGet, "/api/v1/transactions?offset=20&limit=20", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 1)
	s.False(response.Pagination.HasMore)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_LimitCapped() {
	s.ledgerService.EXPECT().
		List(gomock.Any(), models.LedgerFilters{Limit: dto.MaxPageLimit}).
		Return(nil, int64(0), nil)

	c, rec := s.request(http.MethodGet, "/api/v1/transactions?limit=1000", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions":[]`)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Filters() {
	s.ledgerService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f models.LedgerFilters) ([]*models.LedgerEntry, int64, error) {
			s.Equal(models.LedgerTypeExpense, f.Type)
			s.Equal(models.LedgerStatusNeedsReview, f.Status)
			s.Equal("Food", f.Category)
			s.Equal("swig", f.MerchantName)
			s.Require().NotNil(f.StartDate)
			s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
			s.Require().NotNil(f.EndDate)
			s.Equal(time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), *f.EndDate)
			s.Require().NotNil(f.MinAmount)
			s.True(f.MinAmount.Equal(decimal.NewFromInt(100)))
			s.Require().NotNil(f.MaxAmount)
			s.True(f.MaxAmount.Equal(decimal.RequireFromString("999.50")))
			return []*models.LedgerEntry{}, 0, nil
		})

	target := "/api/v1/transactions?type=expense&status=needs_review&category=Food&merchant=swig" +
		"&start_date=2024-03-01&end_date=2024-03-31&min_amount=100&max_amount=999.50"
	c, rec := s.request(http.MethodGet, target, nil)
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidQuery() {
	testCases := []struct {
		name     string
		query    string
		wantCode errors.ErrorCode
	}{
		{"bad start date", "start_date=03/01/2024", errors.ValidationInvalidDate},
		{"bad end date", "end_date=yesterday", errors.ValidationInvalidDate},
		{"negative offset", "offset=-5", errors.ValidationGeneral},
		{"zero limit", "limit=0", errors.ValidationGeneral},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.request(http.MethodGet, "/api/v1/transactions?"+tc.query, nil)
			s.Require().NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(tc.wantCode), decodeError(&s.Suite, rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_ValidatorRejects() {
	for _, query := range []string{"type=debit", "status=pending", "min_amount=abc", "source=email"} {
		s.Run(query, func() {
			c, _ := s.request(http.MethodGet, "/api/v1/transactions?"+query, nil)
			s.Error(s.handler.ListTransactions(c))
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DateRangeFromService() {
	s.ledgerService.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), services.ErrInvalidDateRange)

	c, rec := s.request(http.MethodGet, "/api/v1/transactions?start_date=2024-04-01&end_date=2024-03-01", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidDate), decodeError(&s.Suite, rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_StorageErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{"breaker open", services.ErrStorageUnavailable, http.StatusServiceUnavailable, errors.StorageUnavailable},
		{"bad key", fmt.Errorf("failed to list ledger entries: %w", storage.ErrDecryptionFailed), http.StatusInternalServerError, errors.StorageDecryptionFailed},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, errors.SystemInternalError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ledgerService.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), tc.err)

			c, rec := s.request(http.MethodGet, "/api/v1/transactions", nil)
			s.Require().NoError(s.handler.ListTransactions(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(string(tc.wantCode), decodeError(&s.Suite, rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestGetTransaction() {
	entry := s.newEntry()

	s.Run("found", func() {
		s.ledgerService.EXPECT().Get(gomock.Any(), entry.ID).Return(entry, nil)

		c, rec := s.request(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.GetTransaction(c))

		s.Equal(http.StatusOK, rec.Code)
		var got models.LedgerEntry
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Equal(entry.ID, got.ID)
		s.True(entry.Amount.Equal(got.Amount))
	})

	s.Run("not found", func() {
		s.ledgerService.EXPECT().Get(gomock.Any(), entry.ID).Return(nil, services.ErrEntryNotFound)

		c, rec := s.request(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.GetTransaction(c))

		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal(string(errors.TransactionNotFound), decodeError(&s.Suite, rec).Error.Code)
	})

	s.Run("invalid id", func() {
		c, rec := s.request(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")
		s.Require().NoError(s.handler.GetTransaction(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(string(errors.ValidationInvalidFormat), decodeError(&s.Suite, rec).Error.Code)
	})
}

func (s *TransactionHandlerTestSuite) TestReviewTransaction() {
	entry := s.newEntry()

	s.Run("confirm with corrected category", func() {
		s.ledgerService.EXPECT().
			Review(gomock.Any(), entry.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.ReviewEntryRequest, _, _ string) (*models.LedgerEntry, error) {
				s.Require().NotNil(req.Status)
				s.Equal(models.LedgerStatusConfirmed, *req.Status)
				s.Require().NotNil(req.Category)
				s.Equal("Shopping", *req.Category)
				updated := *entry
				updated.Category = *req.Category
				return &updated, nil
			})

		c, rec := s.request(http.MethodPatch, "/", map[string]string{"status": "confirmed", "category": "Shopping"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"category":"Shopping"`)
	})

	s.Run("empty body", func() {
		c, rec := s.request(http.MethodPatch, "/", map[string]string{})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(string(errors.ValidationRequiredField), decodeError(&s.Suite, rec).Error.Code)
	})

	s.Run("amount with three decimals", func() {
		c, rec := s.request(http.MethodPatch, "/", map[string]string{"amount": "10.005"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(string(errors.TransactionInvalidAmount), decodeError(&s.Suite, rec).Error.Code)
	})

	s.Run("negative amount", func() {
		c, rec := s.request(http.MethodPatch, "/", map[string]string{"amount": "-1"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown status rejected by validator", func() {
		c, _ := s.request(http.MethodPatch, "/", map[string]string{"status": "needs_review"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Error(s.handler.ReviewTransaction(c))
	})

	s.Run("terminal status", func() {
		s.ledgerService.EXPECT().
			Review(gomock.Any(), entry.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: confirmed to rejected", services.ErrInvalidStatusTransition))

		c, rec := s.request(http.MethodPatch, "/", map[string]string{"status": "rejected"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(string(errors.TransactionInvalidTransition), decodeError(&s.Suite, rec).Error.Code)
	})

	s.Run("rejected entry frozen", func() {
		s.ledgerService.EXPECT().
			Review(gomock.Any(), entry.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrEntryNotEditable)

		c, rec := s.request(http.MethodPatch, "/", map[string]string{"merchant_name": "Zomato"})
		c.SetParamNames("id")
		c.SetParamValues(entry.ID.String())
		s.Require().NoError(s.handler.ReviewTransaction(c))

		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()

	s.Run("deleted", func() {
		s.ledgerService.EXPECT().Delete(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		c, rec := s.request(http.MethodDelete, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		s.Require().NoError(s.handler.DeleteTransaction(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing", func() {
		s.ledgerService.EXPECT().Delete(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(services.ErrEntryNotFound)

		c, rec := s.request(http.MethodDelete, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		s.Require().NoError(s.handler.DeleteTransaction(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TransactionHandlerTestSuite) TestExportTransactions() {
	s.Run("csv by default", func() {
		s.exportService.EXPECT().
			Export(gomock.Any(), gomock.Any(), dto.ExportFormatCSV, models.LedgerFilters{Status: models.LedgerStatusConfirmed}, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, w io.Writer, _ string, _ models.LedgerFilters, _, _ string) (int, error) {
				_, err := io.WriteString(w, "id,occurred_at\n")
				return 0, err
			})

		c, rec := s.request(http.MethodGet, "/api/v1/transactions/export?status=confirmed", nil)
		s.Require().NoError(s.handler.ExportTransactions(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		s.Equal(`attachment; filename="ledger-20240315-093000.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
		s.Equal("id,occurred_at\n", rec.Body.String())
	})

	s.Run("json", func() {
		s.exportService.EXPECT().
			Export(gomock.Any(), gomock.Any(), dto.ExportFormatJSON, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, w io.Writer, _ string, _ models.LedgerFilters, _, _ string) (int, error) {
				_, err := io.WriteString(w, "[]\n")
				return 0, err
			})

		c, rec := s.request(http.MethodGet, "/api/v1/transactions/export?format=JSON", nil)
		s.Require().NoError(s.handler.ExportTransactions(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(echo.MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), ".json")
	})

	s.Run("unknown format", func() {
		s.exportService.EXPECT().
			Export(gomock.Any(), gomock.Any(), "xml", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, fmt.Errorf("%w: %q", services.ErrInvalidExportFormat, "xml"))

		c, rec := s.request(http.MethodGet, "/api/v1/transactions/export?format=xml", nil)
		s.Require().NoError(s.handler.ExportTransactions(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Empty(rec.Header().Get(echo.HeaderContentDisposition))
		s.Equal(string(errors.ValidationInvalidFormat), decodeError(&s.Suite, rec).Error.Code)
	})
}

func (s *TransactionHandlerTestSuite) TestSummary() {
	summary := &models.LedgerSummary{
		Categories: []models.CategorySummary{
			{Category: "Food", ExpenseTotal: decimal.NewFromInt(450), NetAmount: decimal.NewFromInt(-450), EntryCount: 1},
		},
		TotalIncome:      decimal.NewFromInt(50000),
		TotalExpense:     decimal.NewFromInt(450),
		NetAmount:        decimal.NewFromInt(49550),
		ConfirmedCount:   2,
		NeedsReviewCount: 1,
	}
	s.ledgerService.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(summary, nil)

	c, rec := s.request(http.MethodGet, "/api/v1/transactions/summary?start_date=2024-03-01", nil)
	s.Require().NoError(s.handler.Summary(c))

	s.Equal(http.StatusOK, rec.Code)
	var got models.LedgerSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.True(got.NetAmount.Equal(decimal.NewFromInt(49550)))
	s.Equal(1, got.NeedsReviewCount)
	s.Len(got.Categories, 1)
}

func (s *TransactionHandlerTestSuite) TestIsValidAmount() {
	s.True(isValidAmount(decimal.RequireFromString("0.01")))
	s.True(isValidAmount(decimal.RequireFromString("1250.5")))
	s.False(isValidAmount(decimal.Zero))
	s.False(isValidAmount(decimal.RequireFromString("-3")))
	s.False(isValidAmount(decimal.RequireFromString("1.999")))
}
