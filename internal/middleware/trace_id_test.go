package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeTraceID(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var contextTraceID string
	handler := TraceID()(func(c echo.Context) error {
		contextTraceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return contextTraceID, rec
}

func TestTraceID_GeneratesWhenAbsent(t *testing.T) {
	contextTraceID, rec := invokeTraceID(t, "")

	// A fresh UUID lands in both the context and the response header
	_, err := uuid.Parse(contextTraceID)
	assert.NoError(t, err)
	assert.Equal(t, contextTraceID, rec.Header().Get(TraceIDHeader))
}

func TestTraceID_HonorsCallerSuppliedUUID(t *testing.T) {
	incoming := uuid.NewString()

	contextTraceID, rec := invokeTraceID(t, incoming)

	assert.Equal(t, incoming, contextTraceID)
	assert.Equal(t, incoming, rec.Header().Get(TraceIDHeader))
}

func TestTraceID_ReplacesNonUUIDInput(t *testing.T) {
	contextTraceID, rec := invokeTraceID(t, "not-a-uuid; DROP TABLE logs")

	assert.NotEqual(t, "not-a-uuid; DROP TABLE logs", contextTraceID)
	_, err := uuid.Parse(contextTraceID)
	assert.NoError(t, err)
	assert.Equal(t, contextTraceID, rec.Header().Get(TraceIDHeader))
}

func TestGetTraceID_OutsideTracedRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
