// Package integration exercises the assembled service: the real handler,
// session store and search use case wired together the way the server
// binary wires them, with only the providers replaced by mocks. Tests here
// cover the full search -> filter -> delete lifecycle over HTTP.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	flighthttp "github.com/farescope/flight-offers-service/internal/adapter/http"
	"github.com/farescope/flight-offers-service/internal/adapter/http/middleware"
	"github.com/farescope/flight-offers-service/internal/adapter/http/response"
	"github.com/farescope/flight-offers-service/internal/cache"
	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/infrastructure/logger"
	"github.com/farescope/flight-offers-service/internal/session"
	"github.com/farescope/flight-offers-service/internal/usecase"
)

// Env bundles the collaborators behind one search stack. HTTP tests wrap
// it in a TestServer; use-case tests drive Env.UseCase directly and reach
// into Env.Sessions to inspect the sessions a search created.
type Env struct {
	Registry *domain.ProviderRegistry
	Sessions *session.Store
	UseCase  usecase.SearchUseCase
}

// NewEnv builds a search stack over the given providers in failover order,
// with caching disabled and default timeouts. The session store's janitor
// is stopped automatically when the test finishes.
func NewEnv(t *testing.T, providers ...domain.OffersProvider) *Env {
	return newEnv(t, nil, nil, providers)
}

// NewEnvWithConfig builds a search stack with custom timeouts.
func NewEnvWithConfig(t *testing.T, config *usecase.Config, providers ...domain.OffersProvider) *Env {
	return newEnv(t, nil, config, providers)
}

// NewEnvWithCache builds a search stack over the given snapshot cache.
func NewEnvWithCache(t *testing.T, snapshots cache.Cache, providers ...domain.OffersProvider) *Env {
	return newEnv(t, snapshots, nil, providers)
}

func newEnv(t *testing.T, snapshots cache.Cache, config *usecase.Config, providers []domain.OffersProvider) *Env {
	t.Helper()

	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}

	sessions := session.NewStore(session.DefaultConfig(), nil, logger.Nop())
	t.Cleanup(sessions.Close)

	return &Env{
		Registry: registry,
		Sessions: sessions,
		UseCase:  usecase.NewSearchUseCase(registry, snapshots, sessions, logger.Nop(), config),
	}
}

// TestServer hosts the HTTP stack over an Env and provides request
// helpers for tests.
type TestServer struct {
	Echo    *echo.Echo
	Handler *flighthttp.FlightHandler
	Env     *Env
}

// NewTestServer assembles the Echo application the way the server binary
// does: full middleware chain, flight routes and operational endpoints.
func NewTestServer(env *Env) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := flighthttp.NewFlightHandler(env.UseCase, env.Sessions, flighthttp.HealthInfo{
		Providers: env.Registry.Names(),
		Cache:     "disabled",
	})

	middleware.Setup(e, logger.Nop().Logger)
	flighthttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Env:     env,
	}
}

// Request represents a test HTTP request configuration. RawBody, when set,
// is sent verbatim instead of marshaling Body; it exists for malformed
// payload tests.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     string
	ContentType string
}

// Response represents a recorded test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request against the in-process server.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewReader([]byte(req.RawBody))
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil || req.RawBody != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// SessionRequest fetches a session's current view.
func (ts *TestServer) SessionRequest(id string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/flights/sessions/" + id,
	})
}

// FiltersRequest patches a session's filters with the given body.
func (ts *TestServer) FiltersRequest(id string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPatch,
		Path:   "/api/v1/flights/sessions/" + id + "/filters",
		Body:   body,
	})
}

// DeleteRequest deletes a session.
func (ts *TestServer) DeleteRequest(id string) Response {
	return ts.Do(Request{
		Method: http.MethodDelete,
		Path:   "/api/v1/flights/sessions/" + id,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// envelope mirrors the API response envelope for decoding test responses.
type envelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
	Meta    response.Meta         `json:"meta"`
}

func (r *Response) unwrap() (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ParseSearchResponse decodes the data payload of a search response.
func (r *Response) ParseSearchResponse() (*flighthttp.SearchResponseDTO, error) {
	env, err := r.unwrap()
	if err != nil {
		return nil, err
	}
	var data flighthttp.SearchResponseDTO
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ParseView decodes the data payload of a session view response.
func (r *Response) ParseView() (*flighthttp.ViewDTO, error) {
	env, err := r.unwrap()
	if err != nil {
		return nil, err
	}
	var data flighthttp.ViewDTO
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ParseError decodes the error detail of a failed response.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	env, err := r.unwrap()
	if err != nil {
		return nil, err
	}
	if env.Error == nil {
		return nil, errors.New("response carries no error detail")
	}
	return env.Error, nil
}

// ParseHealth decodes the bare health check payload.
func (r *Response) ParseHealth() (*response.HealthResponse, error) {
	var health response.HealthResponse
	if err := json.Unmarshal(r.Body, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	CurrencyCode  string `json:"currencyCode,omitempty"`
}

// DefaultSearchRequest returns a valid one-way search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "MAD",
		Destination:   "JFK",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}
}

// DefaultSearchCriteria returns valid criteria for driving the use case
// directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "MAD",
		Destination:   "JFK",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}
}

// memCache is a map-backed snapshot cache so tests can exercise the
// cache-hit path without a Redis instance.
type memCache struct {
	mu    sync.Mutex
	items map[string]*domain.SearchSnapshot
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string]*domain.SearchSnapshot)}
}

func (c *memCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot, ok := c.items[criteriaKey(criteria)]
	return snapshot, ok, nil
}

func (c *memCache) Set(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[criteriaKey(criteria)] = snapshot
	return nil
}

func (c *memCache) Close() error { return nil }

func criteriaKey(criteria domain.SearchCriteria) string {
	data, _ := json.Marshal(criteria)
	return string(data)
}

// Ensure memCache satisfies Cache at compile time.
var _ cache.Cache = (*memCache)(nil)
