// Package confluence provides the authenticated Confluence Cloud REST client:
// page content by id (with embedded resource expansion) and user lookup by
// account id. Both are idempotent reads; failures are classified and returned
// as typed errors, never retried.
package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Confluence API operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confluence_requests_total",
		Help: "Total Confluence API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "confluence_request_duration_seconds",
		Help:    "Confluence API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confluence_errors_total",
		Help: "Total Confluence API errors by class",
	}, []string{"class"})
)

// DefaultExpand lists the embedded resources requested with each page:
// storage-format body, version info, ancestor chain, creation history with
// creator, and space info.
const DefaultExpand = "body.storage,version,ancestors,history.createdBy,space"

// Endpoint paths, relative to a site base URL ("{scheme}://{host}/wiki").
const (
	contentEndpoint = "/rest/api/content/"
	userEndpoint    = "/rest/api/user"
)

// Config holds the client configuration.
type Config struct {
	// UserName is the account email for HTTP basic auth (REQUIRED).
	UserName string

	// APIToken is the API token for HTTP basic auth (REQUIRED).
	APIToken string

	// Expand is the expand list sent with page requests.
	Expand string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns a configuration with the standard expand list and
// a 30 second request timeout.
func DefaultConfig(userName, apiToken string) Config {
	return Config{
		UserName: userName,
		APIToken: apiToken,
		Expand:   DefaultExpand,
		Timeout:  30 * time.Second,
	}
}

// Client is the Confluence REST API client.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// New creates a new Confluence client.
func New(cfg Config) (*Client, error) {
	if cfg.UserName == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("api token is required")
	}
	if cfg.Expand == "" {
		cfg.Expand = DefaultExpand
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "confluence-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// GetPage fetches one page by id with the configured expansions.
// Any transport error or non-2xx status returns an *APIError; the caller
// treats that as "skip this URL, continue batch".
func (c *Client) GetPage(ctx context.Context, baseURL, pageID string) (*Page, error) {
	endpoint := contentEndpoint + pageID
	requestURL := fmt.Sprintf("%s%s?expand=%s", baseURL, endpoint, url.QueryEscape(c.config.Expand))

	var page Page
	if err := c.getJSON(ctx, endpoint, requestURL, &page); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("page_id", pageID).
		Str("title", page.Title).
		Msg("Fetched page")

	return &page, nil
}

// GetUser fetches a user by account id.
func (c *Client) GetUser(ctx context.Context, baseURL, accountID string) (*User, error) {
	requestURL := fmt.Sprintf("%s%s?accountId=%s", baseURL, userEndpoint, url.QueryEscape(accountID))

	var user User
	if err := c.getJSON(ctx, userEndpoint, requestURL, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, endpoint, requestURL string, out any) error {
	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.config.UserName, c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return &APIError{ErrorClass: ErrorClassNetwork, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errClass := classifyStatus(resp.StatusCode)
		errorsTotal.WithLabelValues(string(errClass)).Inc()
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Confluence request error")
		return &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Endpoint:   endpoint,
			Message:    resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}

	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
