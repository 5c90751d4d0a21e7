package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/riskibarqy/gamelog/external/apisports"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
)

const (
	DefaultRelaySport    = sport.KeyFootball
	DefaultRelayEndpoint = "fixtures"
)

// RelayRequest is one caller request to forward. Params excludes sport and endpoint.
type RelayRequest struct {
	Sport    string
	Endpoint string
	Params   url.Values
}

// RelayResult is the upstream body, untouched.
type RelayResult struct {
	StatusCode int
	Body       []byte
}

// Relay forwards a request to the sports data provider.
type Relay interface {
	Forward(ctx context.Context, req RelayRequest) (RelayResult, error)
}

// UpstreamFetcher performs one provider call.
type UpstreamFetcher interface {
	Fetch(ctx context.Context, key sport.Key, endpoint string, params url.Values, apiKey string) (apisports.Payload, error)
}

// CredentialSource yields the provider credential. Implementations read it at call time.
type CredentialSource interface {
	Credential() string
}

type RelayService struct {
	upstream    UpstreamFetcher
	credentials CredentialSource
	logger      *logging.Logger
}

func NewRelayService(upstream UpstreamFetcher, credentials CredentialSource, logger *logging.Logger) *RelayService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RelayService{
		upstream:    upstream,
		credentials: credentials,
		logger:      logger,
	}
}

func (s *RelayService) Forward(ctx context.Context, req RelayRequest) (RelayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RelayService.Forward")
	defer span.End()

	apiKey := strings.TrimSpace(s.credentials.Credential())
	if apiKey == "" {
		return RelayResult{}, ErrMissingCredential
	}

	key, endpoint, params, err := normalizeRelayRequest(req)
	if err != nil {
		return RelayResult{}, err
	}

	payload, err := s.upstream.Fetch(ctx, key, endpoint, params, apiKey)
	if err != nil {
		if ctx.Err() != nil {
			return RelayResult{}, ctx.Err()
		}
		return RelayResult{}, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	if payload.HasErrors() {
		s.logger.WarnContext(ctx, "sports provider reported errors",
			"sport", key,
			"endpoint", endpoint,
			"status", payload.StatusCode,
			"errors", payload.Errors,
		)
		return RelayResult{}, &UpstreamError{StatusCode: payload.StatusCode, Errors: payload.Errors}
	}

	return RelayResult{StatusCode: payload.StatusCode, Body: payload.Body}, nil
}

func normalizeRelayRequest(req RelayRequest) (sport.Key, string, url.Values, error) {
	key := DefaultRelaySport
	if raw := strings.TrimSpace(req.Sport); raw != "" {
		parsed, ok := sport.ParseKey(raw)
		if !ok {
			return "", "", nil, fmt.Errorf("%w: unsupported sport %q", ErrInvalidInput, raw)
		}
		key = parsed
	}

	endpoint := strings.Trim(strings.TrimSpace(req.Endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultRelayEndpoint
	}
	if err := validateEndpoint(endpoint); err != nil {
		return "", "", nil, err
	}

	params := make(url.Values, len(req.Params))
	for name, values := range req.Params {
		name = strings.TrimSpace(name)
		if name == "" || name == "sport" || name == "endpoint" {
			continue
		}
		for _, value := range values {
			if value == "" {
				continue
			}
			params.Add(name, value)
		}
	}

	return key, endpoint, params, nil
}

func validateEndpoint(endpoint string) error {
	if strings.ContainsAny(endpoint, "?#") {
		return fmt.Errorf("%w: endpoint must not carry a query or fragment", ErrInvalidInput)
	}
	if strings.Contains(endpoint, "..") {
		return fmt.Errorf("%w: endpoint must not traverse paths", ErrInvalidInput)
	}
	if strings.IndexFunc(endpoint, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: endpoint must not contain whitespace", ErrInvalidInput)
	}
	return nil
}
