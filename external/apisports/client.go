package apisports

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultFootballBaseURL   = "https://v3.football.api-sports.io"
	DefaultBasketballBaseURL = "https://v1.basketball.api-sports.io"

	// KeyHeader carries the provider credential on every outbound call.
	KeyHeader = "x-apisports-key"

	// DefaultMaxBodyBytes bounds one upstream body. Unfiltered league listings stay well below it.
	DefaultMaxBodyBytes = 32 << 20
)

var (
	ErrUnsupportedSport = crerr.New("apisports: unsupported sport")
	ErrNonJSONBody      = crerr.New("apisports: upstream body is not valid JSON")
	ErrBodyTooLarge     = crerr.New("apisports: upstream body exceeds size limit")
)

type ClientConfig struct {
	HTTPClient        *http.Client
	FootballBaseURL   string
	BasketballBaseURL string
	// Timeout bounds one upstream call. Zero leaves the call bounded only by ctx.
	Timeout time.Duration
	// MaxBodyBytes caps the upstream body. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Logger       *logging.Logger
}

// Client issues single, unretried GET calls against the api-sports.io hosts.
type Client struct {
	httpClient *http.Client
	baseURLs   map[sport.Key]string
	maxBody    int64
	logger     *logging.Logger
}

// Payload is one upstream response. Body is passed through untouched.
type Payload struct {
	StatusCode int
	Body       []byte
	// Errors is the decoded upstream "errors" member when it is non-empty.
	Errors any
}

func (p Payload) HasErrors() bool {
	return HasErrors(p.Errors)
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		}
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &Client{
		httpClient: httpClient,
		baseURLs: map[sport.Key]string{
			sport.KeyFootball:   normalizeBaseURL(cfg.FootballBaseURL, DefaultFootballBaseURL),
			sport.KeyBasketball: normalizeBaseURL(cfg.BasketballBaseURL, DefaultBasketballBaseURL),
		},
		maxBody: maxBody,
		logger:  logger,
	}
}

// BaseURL returns the host serving key. Football never resolves to the basketball host and vice versa.
func (c *Client) BaseURL(key sport.Key) (string, bool) {
	base, ok := c.baseURLs[key]
	return base, ok
}

// Fetch performs exactly one GET of base/endpoint?params with the credential header.
func (c *Client) Fetch(ctx context.Context, key sport.Key, endpoint string, params url.Values, apiKey string) (Payload, error) {
	fullURL, err := c.BuildURL(key, endpoint, params)
	if err != nil {
		return Payload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Payload{}, crerr.Wrap(err, "apisports: build request")
	}
	req.Header.Set(KeyHeader, apiKey)
	req.Header.Set("accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Payload{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "apisports request failed", "sport", key, "url", fullURL, "error", sanitizeSensitiveText(err.Error(), apiKey))
		return Payload{}, crerr.Newf("apisports: send request: %s", sanitizeSensitiveText(err.Error(), apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return Payload{}, crerr.Wrap(err, "apisports: read response body")
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.WarnContext(ctx, "apisports body over limit", "sport", key, "status", resp.StatusCode, "limit_bytes", c.maxBody)
		return Payload{}, crerr.Wrapf(ErrBodyTooLarge, "status=%d limit=%d bytes", resp.StatusCode, c.maxBody)
	}

	var probe struct {
		Errors any `json:"errors"`
	}
	if err := sonic.Unmarshal(raw, &probe); err != nil {
		c.logger.WarnContext(ctx, "apisports returned non-json body", "sport", key, "status", resp.StatusCode, "body", abbreviateBody(raw))
		return Payload{}, crerr.Wrapf(ErrNonJSONBody, "status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	payload := Payload{StatusCode: resp.StatusCode, Body: raw}
	if HasErrors(probe.Errors) {
		payload.Errors = probe.Errors
	}

	c.logger.DebugContext(ctx, "apisports request completed",
		"sport", key,
		"url", fullURL,
		"status", resp.StatusCode,
		"upstream_errors", payload.HasErrors(),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return payload, nil
}

// BuildURL joins the sport host, endpoint and encoded query. Empty values are dropped.
func (c *Client) BuildURL(key sport.Key, endpoint string, params url.Values) (string, error) {
	base, ok := c.baseURLs[key]
	if !ok {
		return "", crerr.Wrapf(ErrUnsupportedSport, "sport=%q", key)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(base)
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(strings.TrimLeft(strings.TrimSpace(endpoint), "/"))
	if encoded := compactParams(params).Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}

	return buf.String(), nil
}

// HasErrors reports whether an upstream "errors" member carries anything.
// api-sports sends [] when there is nothing to report and an object keyed by field otherwise.
func HasErrors(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case map[string]any:
		return len(typed) > 0
	case []any:
		return len(typed) > 0
	case string:
		return strings.TrimSpace(typed) != ""
	default:
		return true
	}
}

// IsRateLimit reports whether upstream errors name the request quota.
func IsRateLimit(v any) bool {
	typed, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = typed["requests"]
	return ok
}

func compactParams(params url.Values) url.Values {
	out := make(url.Values, len(params))
	for key, values := range params {
		if strings.TrimSpace(key) == "" {
			continue
		}
		for _, value := range values {
			if value == "" {
				continue
			}
			out.Add(key, value)
		}
	}
	return out
}

func normalizeBaseURL(raw, fallback string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return fallback
	}
	return base
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
