package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthInvalidPIN, s.traceID)

	s.NotNil(response)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Incorrect PIN", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		TransactionNotFound,
		s.traceID,
		WithMessage("Ledger entry missing"),
		WithDetails("id: 42"),
	)

	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Ledger entry missing", response.Error.Message)
	s.Equal([]string{"id: 42"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"text": "is required",
		"pin":  "must be numeric",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"pin: must be numeric", "text: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internal := errors.New("sqlite: database is locked at /var/lib/ledger.db")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "sqlite")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapStorageError() {
	internal := errors.New("cipher: message authentication failed")

	response, err := WrapStorageError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(StorageUnavailable), response.Error.Code)
	s.Equal(http.StatusServiceUnavailable, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestToJSON_ValidSerialization() {
	response := NewErrorResponse(ParseNotTransaction, s.traceID, WithDetails("keywords: 1"))

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("PARSE_002", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationWeakPIN, http.StatusBadRequest},
		{ParseEmptyMessage, http.StatusBadRequest},
		{ParseBatchTooLarge, http.StatusBadRequest},
		{TransactionInvalidStatus, http.StatusBadRequest},
		{AuthInvalidPIN, http.StatusUnauthorized},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthSessionLocked, http.StatusUnauthorized},
		{AuthLockedOut, http.StatusForbidden},
		{AuthBiometricDisabled, http.StatusForbidden},
		{TransactionNotFound, http.StatusNotFound},
		{TransactionDuplicate, http.StatusConflict},
		{TransactionInvalidTransition, http.StatusConflict},
		{AuthPINAlreadySet, http.StatusConflict},
		{AuthPINNotSet, http.StatusConflict},
		{ParseNotTransaction, http.StatusUnprocessableEntity},
		{ParseNoAmount, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{StorageUnavailable, http.StatusServiceUnavailable},
		{StorageDecryptionFailed, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_001", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	s.True(NewErrorResponse(AuthInvalidPIN, s.traceID).IsClientError())
	s.False(NewErrorResponse(AuthInvalidPIN, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
	s.False(NewErrorResponse(SystemInternalError, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(AuthLockedOut, "trace-1")

	s.Equal("[AUTH_006] Too many failed attempts, try again later (trace: trace-1)", response.String())
}
