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

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Transaction not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Amount is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests creating error response with custom message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError tests building a field-level validation error
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"amount": "must be a positive decimal",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"amount: must be a positive decimal"}, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestWrapSystemError tests that internal errors are hidden from clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused")
	response, returned := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pq:")
	s.Equal(internal, returned)
}

// TestToJSON tests JSON serialization of the error response
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ReportInvalidYear, s.traceID)

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("REPORT_002", decoded.Error.Code)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests the error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{TransactionInvalidKind, http.StatusBadRequest},
		{ReportInvalidLedgerKind, http.StatusBadRequest},
		{ReportInvalidYear, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInvalidTokenFormat, http.StatusUnauthorized},
		{TransactionNotFound, http.StatusNotFound},
		{TransactionTagsInvalid, http.StatusUnprocessableEntity},
		{TransactionValidationFailed, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{CacheInvalidationFailed, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestClientServerErrorClassification tests the 4xx/5xx helpers
func (s *ResponseTestSuite) TestClientServerErrorClassification() {
	clientError := NewErrorResponse(TransactionNotFound, s.traceID)
	s.True(clientError.IsClientError())
	s.False(clientError.IsServerError())

	serverError := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.False(serverError.IsClientError())
	s.True(serverError.IsServerError())
}

// TestGetErrorMessage_UnknownCode tests fallback message for unregistered codes
func (s *ResponseTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_000")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_000")))
	s.True(IsValidErrorCode(CacheInvalidationFailed))
}
