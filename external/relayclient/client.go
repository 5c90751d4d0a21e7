package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
	"github.com/riskibarqy/gamelog/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultMaxBodyBytes = 32 << 20

var (
	ErrMalformedEnvelope = crerr.New("relayclient: response is not a relay envelope")
	ErrBodyTooLarge      = crerr.New("relayclient: response body exceeds size limit")
)

type ClientConfig struct {
	HTTPClient *http.Client
	URL        string
	// APIKey is sent as bearer token and apikey header when the deployment sits behind a gateway.
	APIKey  string
	Timeout time.Duration
	// MaxBodyBytes caps the relay response. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Logger       *logging.Logger
}

// Client forwards relay requests to a deployed relay function and unwraps its envelope.
// It satisfies usecase.Relay.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	maxBody    int64
	logger     *logging.Logger
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  any             `json:"errors"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
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
		url:        strings.TrimSpace(cfg.URL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxBody:    maxBody,
		logger:     logger,
	}
}

func (c *Client) Forward(ctx context.Context, req usecase.RelayRequest) (usecase.RelayResult, error) {
	body, err := encodeRequest(req)
	if err != nil {
		return usecase.RelayResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return usecase.RelayResult{}, crerr.Wrap(err, "relayclient: build request")
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return usecase.RelayResult{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "remote relay request failed", "url", c.url, "error", err)
		return usecase.RelayResult{}, fmt.Errorf("%w: remote relay: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return usecase.RelayResult{}, fmt.Errorf("%w: read remote relay body: %v", usecase.ErrDependencyUnavailable, err)
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.WarnContext(ctx, "remote relay body over limit", "status", resp.StatusCode, "limit_bytes", c.maxBody)
		return usecase.RelayResult{}, crerr.Wrapf(ErrBodyTooLarge, "status=%d limit=%d bytes", resp.StatusCode, c.maxBody)
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return usecase.RelayResult{}, crerr.Wrapf(ErrMalformedEnvelope, "status=%d", resp.StatusCode)
	}

	switch {
	case env.Success:
		if len(env.Data) == 0 {
			return usecase.RelayResult{}, crerr.Wrapf(ErrMalformedEnvelope, "status=%d: success without data", resp.StatusCode)
		}
		return usecase.RelayResult{StatusCode: resp.StatusCode, Body: []byte(env.Data)}, nil
	case env.Errors != nil:
		return usecase.RelayResult{}, &usecase.UpstreamError{StatusCode: resp.StatusCode, Errors: env.Errors}
	default:
		message := env.Error
		if message == "" {
			message = env.Message
		}
		c.logger.WarnContext(ctx, "remote relay reported failure", "status", resp.StatusCode, "error", message)
		return usecase.RelayResult{}, fmt.Errorf("%w: remote relay status=%d: %s", usecase.ErrDependencyUnavailable, resp.StatusCode, message)
	}
}

// encodeRequest flattens req into the relay's JSON body. Only the first value of a repeated param is sent.
func encodeRequest(req usecase.RelayRequest) ([]byte, error) {
	fields := make(map[string]string, len(req.Params)+2)
	for name, values := range req.Params {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		fields[name] = values[0]
	}
	if req.Sport != "" {
		fields["sport"] = req.Sport
	}
	if req.Endpoint != "" {
		fields["endpoint"] = req.Endpoint
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		k, err := sonic.Marshal(key)
		if err != nil {
			return nil, crerr.Wrap(err, "relayclient: encode key")
		}
		v, err := sonic.Marshal(fields[key])
		if err != nil {
			return nil, crerr.Wrap(err, "relayclient: encode value")
		}
		_, _ = buf.Write(k)
		_ = buf.WriteByte(':')
		_, _ = buf.Write(v)
	}
	_ = buf.WriteByte('}')

	return append([]byte(nil), buf.B...), nil
}
