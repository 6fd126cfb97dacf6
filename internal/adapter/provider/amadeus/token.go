package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/farescope/flight-offers-service/internal/infrastructure/timeutil"
)

// tokenExpiryMargin is subtracted from the upstream expiry so a token is
// refreshed before it can expire mid-request.
const tokenExpiryMargin = 30 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenManager caches the OAuth2 client-credentials token. The mutex is
// held across the refresh call, so concurrent searches share a single
// token request instead of racing the token endpoint.
type tokenManager struct {
	client    *http.Client
	tokenURL  string
	apiKey    string
	apiSecret string
	clock     timeutil.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenManager(client *http.Client, tokenURL, apiKey, apiSecret string, clock timeutil.Clock) *tokenManager {
	return &tokenManager{
		client:    client,
		tokenURL:  tokenURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		clock:     clock,
	}
}

// Token returns the cached access token, refreshing it when missing or
// within the expiry margin.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.clock.Now().Before(m.expiresAt) {
		return m.token, nil
	}
	return m.refresh(ctx)
}

// Invalidate drops the cached token so the next Token call re-authenticates.
// Used when the upstream rejects a token before its advertised expiry.
func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

// refresh performs the client-credentials grant. Callers must hold mu.
func (m *tokenManager) refresh(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.apiKey)
	form.Set("client_secret", m.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("token endpoint returned an empty access token")
	}

	m.token = token.AccessToken
	m.expiresAt = m.clock.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	return m.token, nil
}
