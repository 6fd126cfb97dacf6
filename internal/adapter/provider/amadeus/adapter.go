// Package amadeus implements the primary flight-offers provider against
// the Amadeus Self-Service API: OAuth2 client-credentials authentication,
// rate-limited offer searches, and normalization of the wire payload into
// the domain snapshot.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/infrastructure/logger"
	"github.com/farescope/flight-offers-service/internal/infrastructure/retry"
	"github.com/farescope/flight-offers-service/internal/infrastructure/timeutil"
)

// ProviderName identifies this provider in errors, logs and metrics.
const ProviderName = "amadeus"

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"

	// maxOffers caps the page size requested from the upstream.
	maxOffers = 50
)

// Defaults applied by NewAdapter when the corresponding Config field is zero.
const (
	DefaultBaseURL           = "https://test.api.amadeus.com"
	DefaultTimeout           = 10 * time.Second
	DefaultRequestsPerSecond = 10.0
	DefaultBurst             = 20
)

// Config holds the connection settings for the Amadeus API.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string

	// Timeout bounds each HTTP round trip independently of the request
	// context.
	Timeout time.Duration

	// RequestsPerSecond and Burst configure the client-side rate limiter.
	RequestsPerSecond float64
	Burst             int
}

// Adapter implements domain.OffersProvider against the Amadeus API.
type Adapter struct {
	client  *http.Client
	baseURL string
	tokens  *tokenManager
	limiter *rate.Limiter
	retry   retry.Config
	logger  *logger.Logger
}

// Compile-time check that Adapter satisfies the provider contract.
var _ domain.OffersProvider = (*Adapter)(nil)

// NewAdapter creates an Amadeus adapter. Zero Config fields fall back to
// the package defaults; a nil logger disables logging.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if log == nil {
		log = logger.Nop()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	client := &http.Client{Timeout: cfg.Timeout}

	return &Adapter{
		client:  client,
		baseURL: baseURL,
		tokens:  newTokenManager(client, baseURL+tokenPath, cfg.APIKey, cfg.APISecret, timeutil.NewRealClock()),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retry:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
		logger:  log.WithProvider(ProviderName),
	}
}

// Name returns the provider identifier used by the registry.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search fetches flight offers for the given criteria. Client errors from
// the upstream (4xx) fail immediately; server errors and network failures
// are retried with backoff. All failures surface as *domain.ProviderError.
func (a *Adapter) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewProviderTimeoutError(ProviderName)
		}
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("rate limiter: %w", err))
	}

	snapshot, err := retry.DoWithResult(ctx, func() (*domain.SearchSnapshot, error) {
		return a.fetchOffers(ctx, criteria)
	}, a.retry)
	if err != nil {
		return nil, a.classifyError(err)
	}

	a.logger.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("offers", len(snapshot.Offers)).
		Msg("upstream search completed")

	return snapshot, nil
}

// fetchOffers performs a single search attempt: authenticate, call the
// offers endpoint, normalize. Errors are pre-classified for the retry
// loop: retry.Permanent stops it, everything else is retried.
func (a *Adapter) fetchOffers(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("authenticate: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+offersPath, nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("build offers request: %w", err)))
	}
	req.URL.RawQuery = searchQuery(criteria).Encode()
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, retry.NewPermanent(domain.NewProviderTimeoutError(ProviderName))
		}
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("offers request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Decode below.
	case resp.StatusCode == http.StatusUnauthorized:
		// The upstream can revoke a token before its advertised expiry.
		// Drop the cached token so the retry re-authenticates.
		a.tokens.Invalidate()
		return nil, domain.NewRetryableProviderError(ProviderName,
			fmt.Errorf("token rejected: %s", readErrorDetail(resp.Body)))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewRetryableProviderError(ProviderName,
			fmt.Errorf("upstream rate limit hit: %s", readErrorDetail(resp.Body)))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName,
			fmt.Errorf("upstream rejected request (status %d): %s", resp.StatusCode, readErrorDetail(resp.Body))))
	default:
		return nil, domain.NewRetryableProviderError(ProviderName,
			fmt.Errorf("upstream unavailable (status %d): %s", resp.StatusCode, readErrorDetail(resp.Body)))
	}

	var decoded OffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName,
			fmt.Errorf("decode offers response: %w", err)))
	}

	return Normalize(decoded), nil
}

// classifyError converts the final retry-loop error into the provider
// error the orchestrator expects.
func (a *Adapter) classifyError(err error) error {
	a.logger.Warn().Err(err).Msg("upstream search failed")

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderTimeoutError(ProviderName)
	}
	return domain.NewRetryableProviderError(ProviderName, err)
}

// searchQuery maps domain criteria onto the upstream query parameters.
func searchQuery(criteria domain.SearchCriteria) url.Values {
	q := url.Values{}
	q.Set("originLocationCode", criteria.Origin)
	q.Set("destinationLocationCode", criteria.Destination)
	q.Set("departureDate", criteria.DepartureDate)
	if criteria.RoundTrip() {
		q.Set("returnDate", criteria.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(criteria.Adults))
	if criteria.CurrencyCode != "" {
		q.Set("currencyCode", criteria.CurrencyCode)
	}
	q.Set("max", strconv.Itoa(maxOffers))
	return q
}

type errorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// readErrorDetail extracts a human-readable message from an upstream error
// body, falling back to the raw (truncated) body.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}

	var decoded errorResponse
	if err := json.Unmarshal(raw, &decoded); err == nil && len(decoded.Errors) > 0 {
		first := decoded.Errors[0]
		if first.Detail != "" {
			return first.Detail
		}
		if first.Title != "" {
			return first.Title
		}
	}
	return strings.TrimSpace(string(raw))
}
