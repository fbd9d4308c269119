package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sms-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(traceID string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.NotPanics(func() {
		s.NoError(PanicRecovery()(h)(c))
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesInternalError() {
	rec := s.serve("trace-1", func(c echo.Context) error {
		panic("decrypt buffer overflow")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("trace-1", body.Error.TraceID)
	s.NotContains(rec.Body.String(), "decrypt buffer overflow")
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDReportsUnknown() {
	rec := s.serve("", func(c echo.Context) error {
		panic(42)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *PanicRecoveryTestSuite) TestErrorValuePanic() {
	rec := s.serve("trace-2", func(c echo.Context) error {
		var entries map[string]int
		entries["boom"]++
		return nil
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestNormalFlowUntouched() {
	rec := s.serve("trace-3", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}
