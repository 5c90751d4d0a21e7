package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/gamelog/external/apisports"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMissingCredential     = errors.New("API_FOOTBALL_KEY is not set")
)

// UpstreamError carries the provider's own "errors" member when it reports a problem.
type UpstreamError struct {
	StatusCode int
	Errors     any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream reported errors status=%d: %v", e.StatusCode, e.Errors)
}

// RateLimited reports whether the provider rejected the call for exceeding the request quota.
func (e *UpstreamError) RateLimited() bool {
	return apisports.IsRateLimit(e.Errors)
}
