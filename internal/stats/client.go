package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apierrors "github.com/OPGLOL/opgl-wrapped/internal/errors"
	"github.com/OPGLOL/opgl-wrapped/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DefaultDataDragonURL      = "https://ddragon.leagueoflegends.com"
	FallbackDataDragonVersion = "14.1.1"

	DefaultRegion   = "euw1"
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Config holds the base URLs the client talks to
type Config struct {
	// StatsURL serves /getWrapped and /getAllGames
	StatsURL string
	// AnalysisURL serves /analyze, /accountdata and /summary_year
	AnalysisURL string
	// DataDragonURL serves /api/versions.json
	DataDragonURL string
}

// Client handles communication with the wrapped stats backends.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	statsURL      string
	analysisURL   string
	dataDragonURL string
	httpClient    *http.Client
	limiter       *rate.Limiter
	logger        zerolog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		if httpClient != nil {
			client.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger failures are reported to
func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithRateLimit paces outgoing requests to at most requestsPerMinute.
// Zero or negative leaves requests unpaced.
func WithRateLimit(requestsPerMinute int) Option {
	return func(client *Client) {
		if requestsPerMinute <= 0 {
			client.limiter = nil
			return
		}
		client.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	}
}

// NewClient creates a new Client instance
func NewClient(config Config, options ...Option) *Client {
	dataDragonURL := config.DataDragonURL
	if dataDragonURL == "" {
		dataDragonURL = DefaultDataDragonURL
	}

	client := &Client{
		statsURL:      strings.TrimRight(config.StatsURL, "/"),
		analysisURL:   strings.TrimRight(config.AnalysisURL, "/"),
		dataDragonURL: strings.TrimRight(dataDragonURL, "/"),
		httpClient:    &http.Client{},
		logger:        log.Logger,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// call carries the identifiers of one operation invocation
type call struct {
	operation string
	requestID string
	logger    zerolog.Logger
}

func (client *Client) newCall(operation string) *call {
	requestID := uuid.NewString()
	return &call{
		operation: operation,
		requestID: requestID,
		logger: client.logger.With().
			Str("operation", operation).
			Str("request_id", requestID).
			Logger(),
	}
}

// fail logs err and hands it back so callers can `return nil, c.fail(err)`
func (c *call) fail(err error) error {
	event := c.logger.Error().Str("code", string(apierrors.CodeOf(err)))
	if clientError, ok := err.(*apierrors.ClientError); ok && clientError.Status != 0 {
		event = event.Int("status", clientError.Status)
	}
	event.Msg(err.Error())
	return err
}

// send performs exactly one request and returns the body of a 2xx response.
// Errors are *apierrors.ClientError and are not logged here.
func (client *Client) send(ctx context.Context, c *call, method string, url string, payload interface{}) ([]byte, error) {
	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return nil, apierrors.RequestFailed(c.operation, fmt.Errorf("rate limit wait: %w", err))
		}
	}

	var requestBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, apierrors.InvalidInput(c.operation, fmt.Sprintf("failed to marshal request: %v", err))
		}
		requestBody = bytes.NewBuffer(jsonData)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, apierrors.RequestFailed(c.operation, fmt.Errorf("failed to create request: %w", err))
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", c.requestID)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apierrors.RequestFailed(c.operation, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, apierrors.RequestFailed(c.operation, fmt.Errorf("failed to read response body: %w", err))
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apierrors.HTTPStatus(c.operation, response.StatusCode, string(body))
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", response.StatusCode).
		Msg("request completed")

	return body, nil
}

func validateIdentity(operation string, identity models.PlayerIdentity) error {
	if err := identity.Validate(); err != nil {
		return apierrors.InvalidInput(operation, err.Error())
	}
	return nil
}

func normalizeRegion(region string) string {
	if region == "" {
		return DefaultRegion
	}
	return strings.ToLower(region)
}
