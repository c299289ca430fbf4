package modelapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/cricket-analytics/internal/domain/prediction"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/platform/resilience"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultTimeout   = 30 * time.Second
	maxResponseBytes = 1 << 20
)

var (
	errModelTransient = crerr.New("model backend transient failure")
	tracer            = otel.Tracer("cricket-analytics/external/modelapi")
)

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the prediction model service over fasthttp.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *logging.Logger
	guard   *resilience.Guard
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	guard := resilience.NewGuard(cfg.CircuitBreaker)
	guard.Breaker().OnTransition(func(from, to resilience.CircuitState) {
		logger.Warn("model backend circuit breaker transition", "from", from, "to", to)
	})

	return &Client{
		http: &fasthttp.Client{
			Name:                     "cricket-analytics",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBytes,
		},
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger.With("component", "modelapi"),
		guard:   guard,
	}
}

type predictRequest struct {
	BattingTeam string  `json:"batting_team"`
	BowlingTeam string  `json:"bowling_team"`
	City        string  `json:"city"`
	RunsLeft    int     `json:"runs_left"`
	BallsLeft   int     `json:"balls_left"`
	Wickets     int     `json:"wickets"`
	Target      int     `json:"target"`
	CRR         float64 `json:"crr"`
	RRR         float64 `json:"rrr"`
}

type predictResponse struct {
	BattingTeamWinProbability float64 `json:"batting_team_win_probability"`
	BowlingTeamWinProbability float64 `json:"bowling_team_win_probability"`
	PredictionSummary         string  `json:"prediction_summary"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Response string `json:"response"`
}

func (c *Client) Predict(ctx context.Context, in prediction.Request) (prediction.Result, error) {
	body := predictRequest{
		BattingTeam: in.BattingTeam,
		BowlingTeam: in.BowlingTeam,
		City:        in.City,
		RunsLeft:    in.RunsLeft,
		BallsLeft:   in.BallsLeft,
		Wickets:     in.Wickets,
		Target:      in.Target,
		CRR:         in.CRR,
		RRR:         in.RRR,
	}

	var out predictResponse
	if err := c.postJSON(ctx, "predict", "/predict", body, &out); err != nil {
		return prediction.Result{}, err
	}

	return prediction.Result{
		BattingTeamWinProbability: out.BattingTeamWinProbability,
		BowlingTeamWinProbability: out.BowlingTeamWinProbability,
		Summary:                   strings.TrimSpace(out.PredictionSummary),
	}, nil
}

func (c *Client) Query(ctx context.Context, query string) (string, error) {
	var out queryResponse
	if err := c.postJSON(ctx, "sql", "/sql", queryRequest{Query: query}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, payload, target any) (err error) {
	ctx, span := tracer.Start(ctx, "modelapi."+op)
	span.SetAttributes(attribute.String("modelapi.path", path))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if allowErr := c.guard.Allow(); allowErr != nil {
		c.logger.WarnContext(ctx, "model backend circuit breaker rejected request", "op", op, "state", c.guard.State())
		return fmt.Errorf("%w: model backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	status, raw, callErr := c.execute(ctx, path, payload)
	c.guard.Record(callErr, func(err error) bool { return crerr.Is(err, errModelTransient) })
	if callErr != nil {
		c.logger.WarnContext(ctx, "model backend request failed", "op", op, "status", status, "error", callErr)
		return &usecase.FetchError{Op: op, StatusCode: status, Err: callErr}
	}

	if decodeErr := sonic.Unmarshal(raw, target); decodeErr != nil {
		return &usecase.FetchError{Op: op, StatusCode: status, Err: crerr.Wrap(decodeErr, "decode model response")}
	}
	return nil
}

func (c *Client) execute(ctx context.Context, path string, payload any) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, crerr.Wrap(err, "model request cancelled")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return 0, nil, crerr.Wrap(err, "encode model request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBody(buf.B)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, crerr.Mark(crerr.Wrapf(err, "call %s", path), errModelTransient)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		statusErr := crerr.Newf("model backend status=%d error=%s", status, errorMessage(body))
		if status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError {
			statusErr = crerr.Mark(statusErr, errModelTransient)
		}
		return status, nil, statusErr
	}
	return status, body, nil
}

type errorBody struct {
	Error string `json:"error"`
}

// errorMessage prefers the backend's {"error": "..."} text over the raw body.
func errorMessage(body []byte) string {
	var parsed errorBody
	if err := sonic.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Error) != "" {
		return strings.TrimSpace(parsed.Error)
	}
	return abbreviate(body)
}

func abbreviate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
