package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve runs a single request through the given middleware and handler.
func serve(t *testing.T, mw echo.MiddlewareFunc, handler echo.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(handler)(c)
	require.NoError(t, err)

	return rec, c
}

// logEntry decodes the single JSON log line written to buf.
func logEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be one JSON line")
	return entry
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestID_GeneratesFreshID(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/search", nil)

	// Act
	rec, c := serve(t, RequestID(), okHandler, req)

	// Assert: header and context carry the same UUID.
	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetRequestID(c))
}

func TestRequestID_KeepsClientSuppliedID(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")

	// Act
	rec, c := serve(t, RequestID(), okHandler, req)

	// Assert
	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-supplied-id", GetRequestID(c))
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	// Act & Assert
	assert.Empty(t, GetRequestID(c))
}

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search?debug=1", nil)
	req.Header.Set("User-Agent", "farescope-cli/2.3")
	req.Header.Set("X-Real-IP", "10.20.30.40")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestIDKey, "req-abc-123")

	// Act
	err := RequestLogger(log)(okHandler)(c)
	require.NoError(t, err)

	// Assert
	entry := logEntry(t, &buf)
	assert.Equal(t, "req-abc-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/flights/search", entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "10.20.30.40", entry["client_ip"])
	assert.Equal(t, "farescope-cli/2.3", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])

	duration, ok := entry["duration_ms"].(float64)
	assert.True(t, ok, "duration_ms should be numeric")
	assert.GreaterOrEqual(t, duration, float64(0))
}

func TestRequestLogger_LevelTracksStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"2xx logs at info", http.StatusOK, "info"},
		{"3xx logs at info", http.StatusMovedPermanently, "info"},
		{"4xx logs at warn", http.StatusNotFound, "warn"},
		{"5xx logs at error", http.StatusBadGateway, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			req := httptest.NewRequest(http.MethodGet, "/search", nil)

			handler := func(c echo.Context) error {
				return c.String(tt.status, "body")
			}

			// Act
			serve(t, RequestLogger(log), handler, req)

			// Assert
			entry := logEntry(t, &buf)
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_HandlerErrorIsResolvedBeforeLogging(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/search", nil)

	handler := func(c echo.Context) error {
		return errors.New("handler blew up")
	}

	// Act: the middleware routes the error through Echo itself.
	rec, _ := serve(t, RequestLogger(log), handler, req)

	// Assert: the logged status is the 500 the client received.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry := logEntry(t, &buf)
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "error", entry["level"])
}

func TestRecover_PanicBecomesEnvelope500(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodPost, "/search", nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestIDKey, "panic-req-id")

	handler := func(c echo.Context) error {
		panic("snapshot index corrupted")
	}

	// Act
	assert.NotPanics(t, func() {
		_ = Recover(log)(handler)(c)
	})

	// Assert: generic envelope, no internal details leaked.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "internal_error", errObj["code"])
	assert.Equal(t, "An unexpected error occurred", errObj["message"])

	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "panic-req-id", meta["request_id"])

	// And the panic is fully logged for the operators.
	entry := logEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-req-id", entry["request_id"])
	assert.Equal(t, "snapshot index corrupted", entry["panic"])
	assert.Contains(t, entry["stack"], "goroutine")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_ErrorPanicKeepsMessage(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/search", nil)

	handler := func(c echo.Context) error {
		panic(errors.New("nil provider in registry"))
	}

	// Act
	rec, _ := serve(t, Recover(log), handler, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry := logEntry(t, &buf)
	assert.Equal(t, "nil provider in registry", entry["panic"])
}

func TestRecover_RuntimePanic(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/search", nil)

	handler := func(c echo.Context) error {
		var offers []string
		_ = offers[3]
		return nil
	}

	// Act & Assert
	rec, _ := serve(t, Recover(log), handler, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_NormalRequestsPassThrough(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/search", nil)

	// Act
	rec, _ := serve(t, Recover(log), okHandler, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Empty(t, buf.String(), "nothing should be logged for a clean request")
}

func TestSetup_WiresTheChain(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	Setup(e, log)
	e.GET("/search", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert: request ID set and present in the request log line.
	assert.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	entry := logEntry(t, &buf)
	assert.Equal(t, id, entry["request_id"])
}

func TestSetup_RecoversPanicsFromHandlers(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	Setup(e, log)
	e.GET("/boom", func(c echo.Context) error {
		panic("wired through Setup")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()

	// Act
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestSetup_AppliesExtraMiddleware(t *testing.T) {
	// Arrange
	e := echo.New()

	calls := 0
	counting := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			calls++
			return next(c)
		}
	}

	Setup(e, zerolog.Nop(), counting)
	e.GET("/search", okHandler)

	// Act
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}
