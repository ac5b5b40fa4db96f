package gsheets

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pitchside/matchboard/internal/platform/logging"
	"github.com/pitchside/matchboard/internal/platform/resilience"
	"github.com/pitchside/matchboard/internal/usecase"
)

const defaultBaseURL = "https://sheets.googleapis.com"

var apiKeyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)

// Status-coded failure classes. Rate limiting is the only status class that
// both retries and trips the circuit breaker; the rest fail fast.
var (
	ErrBadRequest  = crerr.New("sheets bad request")
	ErrForbidden   = crerr.New("sheets access forbidden")
	ErrNotFound    = crerr.New("sheets range not found")
	ErrRateLimited = crerr.New("sheets rate limited")
)

var errSheetsTransient = crerr.New("sheets transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	SpreadsheetID  string
	APIKey         string
	DefaultRange   string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	spreadsheetID  string
	apiKey         string
	defaultRange   string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		spreadsheetID:  strings.TrimSpace(cfg.SpreadsheetID),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		defaultRange:   strings.TrimSpace(cfg.DefaultRange),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type valueRangeEnvelope struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

// FetchRange reads one cell range. The first row is the header row. Cells
// come back unformatted, so dates arrive as day serials and numbers stay
// numeric instead of locale-formatted strings.
func (c *Client) FetchRange(ctx context.Context, readRange string) (usecase.SheetGrid, error) {
	readRange = strings.TrimSpace(readRange)
	if readRange == "" {
		readRange = c.defaultRange
	}
	if readRange == "" {
		return usecase.SheetGrid{}, fmt.Errorf("read range is required")
	}
	if c.spreadsheetID == "" {
		return usecase.SheetGrid{}, fmt.Errorf("spreadsheet id is required")
	}

	path := "/v4/spreadsheets/" + url.PathEscape(c.spreadsheetID) + "/values/" + url.PathEscape(readRange)
	query := map[string]string{
		"valueRenderOption":    "UNFORMATTED_VALUE",
		"dateTimeRenderOption": "SERIAL_NUMBER",
	}

	var envelope valueRangeEnvelope
	if _, err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return usecase.SheetGrid{}, fmt.Errorf("fetch range %s: %w", readRange, err)
	}

	grid := usecase.SheetGrid{Range: envelope.Range}
	if len(envelope.Values) > 0 {
		grid.Header = stringifyHeader(envelope.Values[0])
		grid.Rows = envelope.Values[1:]
	}
	return grid, nil
}

func stringifyHeader(cells []any) []string {
	out := make([]string, 0, len(cells))
	for _, cell := range cells {
		switch v := cell.(type) {
		case string:
			out = append(out, v)
		case nil:
			out = append(out, "")
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sheets circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: spreadsheet service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if c.apiKey != "" {
		values.Set("key", c.apiKey)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	preview := buildSheetsCurlPreview(redactSheetsURL(fullURL))
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("sheets.path", path),
			attribute.String("sheets.request_curl_preview", preview),
		)
	}
	c.logger.DebugContext(ctx, "sheets request", "path", path, "curl_preview", preview)

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isSheetsCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode sheets payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSheetsTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSheetsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				lastErr = statusError(resp.StatusCode, raw)
				if !isRetryableStatus(resp.StatusCode) {
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("sheets request failed")
	}
	c.logger.WarnContext(ctx, "sheets request failed", "url", redactSheetsURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func statusError(code int, body []byte) error {
	detail := abbreviateBody(body)
	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: status=%d body=%s", ErrBadRequest, code, detail)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status=%d body=%s", ErrForbidden, code, detail)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status=%d body=%s", ErrNotFound, code, detail)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status=%d body=%s", ErrRateLimited, code, detail)
	default:
		return fmt.Errorf("%w: status=%d body=%s", errSheetsTransient, code, detail)
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func isSheetsCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSheetsTransient) || stderrors.Is(err, ErrRateLimited)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactSheetsURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func buildSheetsCurlPreview(redactedURL string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-H")
	appendPart(shellQuote("accept: application/json"))
	appendPart(shellQuote(redactedURL))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
