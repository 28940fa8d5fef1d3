package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// MinRequestInterval spaces request issuance to stay inside the free-tier
	// budget of ~10 requests per minute.
	MinRequestInterval = 6500 * time.Millisecond

	connectTimeout = 30 * time.Second
	requestTimeout = 60 * time.Second
)

// Client is the single point of contact with api.football-data.org. Every
// fetch passes through one pacing gate, so concurrent callers never issue two
// requests less than MinRequestInterval apart. The gate tracks issuance time,
// not completion time, so pacing reflects request rate rather than response
// latency.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	clock      clockwork.Clock

	mu          sync.Mutex
	nextAllowed time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithClock overrides the pacing clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// NewClient creates a client authenticated with the given API token. An empty
// token falls back to PlaceholderToken so that unconfigured installs fail with
// a server-side 403 instead of crashing.
func NewClient(token string, opts ...Option) *Client {
	if token == "" {
		token = PlaceholderToken
	}

	c := &Client{
		baseURL: BaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		clock: clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// reserveSlot claims the next allowed dispatch instant and returns how long
// the caller must wait for it. The shared timestamp advances inside the lock,
// so two callers can never compute the same elapsed value and both proceed.
func (c *Client) reserveSlot() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	slot := c.nextAllowed
	if slot.Before(now) {
		slot = now
	}
	c.nextAllowed = slot.Add(MinRequestInterval)

	return slot.Sub(now)
}

func (c *Client) awaitSlot(ctx context.Context) error {
	wait := c.reserveSlot()
	if wait <= 0 {
		return nil
	}

	timer := c.clock.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// get issues a paced GET request and decodes the 200 body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.awaitSlot(ctx); err != nil {
		return err
	}

	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(AuthTokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &ServerError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}
