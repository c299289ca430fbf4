package cricbuzz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/platform/resilience"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

const (
	defaultBaseURL   = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultAPIHost   = "cricbuzz-cricket.p.rapidapi.com"
	defaultTimeout   = 15 * time.Second
	defaultRateLimit = 5
	maxResponseBytes = 6 << 20
)

// errTransient marks failures that count against the circuit breaker: transport
// errors, 429 and 5xx. Client errors and undecodable bodies do not trip it.
var errTransient = crerr.New("cricbuzz transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	RateLimit      float64
	RateBurst      int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Cricbuzz RapidAPI. Every call is one request: there is
// no retry loop, no response cache and no request coalescing.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	logger     *logging.Logger
	guard      *resilience.Guard
	limiter    *rate.Limiter
	metrics    *clientMetrics
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		apiHost = defaultAPIHost
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = int(limit)
		if burst < 1 {
			burst = 1
		}
	}

	guard := resilience.NewGuard(cfg.CircuitBreaker)
	guard.Breaker().OnTransition(func(from, to resilience.CircuitState) {
		logger.Warn("cricbuzz circuit breaker transition", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiHost:    apiHost,
		logger:     logger.With("component", "cricbuzz"),
		guard:      guard,
		limiter:    rate.NewLimiter(rate.Limit(limit), burst),
		metrics:    newClientMetrics(),
	}
}

// doJSON performs one GET and decodes the body into target. op names the
// operation in errors, logs and metrics.
func (c *Client) doJSON(ctx context.Context, op, path string, query url.Values, target any) error {
	if err := c.guard.Allow(); err != nil {
		c.logger.WarnContext(ctx, "cricbuzz circuit breaker rejected request", "op", op, "state", c.guard.State())
		c.metrics.record(ctx, op, "rejected", 0)
		return fmt.Errorf("%w: cricket data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	started := time.Now()
	raw, status, err := c.executeRequest(ctx, fullURL)
	c.guard.Record(err, isCircuitFailure)
	if err != nil {
		c.metrics.record(ctx, op, "error", time.Since(started))
		c.logger.WarnContext(ctx, "cricbuzz request failed", "op", op, "url", redactURL(fullURL), "status", status, "error", err)
		return &usecase.FetchError{Op: op, StatusCode: status, Err: err}
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.metrics.record(ctx, op, "decode_error", time.Since(started))
		return &usecase.FetchError{Op: op, StatusCode: status, Err: crerr.Wrapf(err, "decode payload body=%s", abbreviateBody(raw))}
	}

	c.metrics.record(ctx, op, "ok", time.Since(started))
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, crerr.Wrap(err, "wait for rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, crerr.Wrap(ctx.Err(), "send request")
		}
		return nil, 0, crerr.Mark(crerr.Newf("send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey)), errTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		if isTransientStatus(resp.StatusCode) {
			statusErr = crerr.Mark(statusErr, errTransient)
		}
		return nil, resp.StatusCode, statusErr
	}

	return raw, resp.StatusCode, nil
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" || apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, apiKey, "REDACTED")
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.User = nil
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
