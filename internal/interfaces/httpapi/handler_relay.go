package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

var relayBodyAPI = sonic.Config{UseNumber: true}.Froze()

// Relay forwards one caller request to the sports data provider.
// POST reads parameters from a flat JSON object, GET from the query string.
func (h *Handler) Relay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Relay")
	defer span.End()

	var (
		req usecase.RelayRequest
		err error
	)
	switch r.Method {
	case http.MethodPost:
		req, err = relayRequestFromBody(r)
		if err != nil {
			h.logger.WarnContext(ctx, "relay request body rejected", "error", err)
			if errors.Is(err, usecase.ErrInvalidInput) {
				writeRelayServerError(ctx, w, http.StatusInternalServerError, err.Error())
				return
			}
			writeRelayServerError(ctx, w, http.StatusInternalServerError, relayInvalidBody)
			return
		}
	case http.MethodGet:
		req = relayRequestFromQuery(r.URL.Query())
	default:
		writeRelayServerError(ctx, w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s is not allowed", r.Method))
		return
	}

	result, err := h.relay.Forward(ctx, req)
	if err != nil {
		var upstreamErr *usecase.UpstreamError
		if errors.As(err, &upstreamErr) {
			writeRelayUpstreamError(ctx, w, upstreamErr)
			return
		}
		h.logger.ErrorContext(ctx, "relay failed", "sport", req.Sport, "endpoint", req.Endpoint, "error", err)
		writeRelayServerError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	writeRelaySuccess(ctx, w, result.Body)
}

func relayRequestFromQuery(query url.Values) usecase.RelayRequest {
	params := make(url.Values, len(query))
	for key, values := range query {
		if key == "sport" || key == "endpoint" {
			continue
		}
		params[key] = values
	}
	return usecase.RelayRequest{
		Sport:    query.Get("sport"),
		Endpoint: query.Get("endpoint"),
		Params:   params,
	}
}

// relayRequestFromBody accepts only a JSON object whose values are scalars.
// Numbers keep their literal text, null and empty strings are dropped.
func relayRequestFromBody(r *http.Request) (usecase.RelayRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return usecase.RelayRequest{}, fmt.Errorf("read body: %w", err)
	}

	var fields map[string]any
	if err := relayBodyAPI.Unmarshal(raw, &fields); err != nil {
		return usecase.RelayRequest{}, fmt.Errorf("decode body: %w", err)
	}
	if fields == nil {
		return usecase.RelayRequest{}, fmt.Errorf("decode body: expected a JSON object")
	}

	req := usecase.RelayRequest{Params: make(url.Values, len(fields))}
	for key, value := range fields {
		text, keep, err := relayParamText(key, value)
		if err != nil {
			return usecase.RelayRequest{}, err
		}
		if !keep {
			continue
		}
		switch key {
		case "sport":
			req.Sport = text
		case "endpoint":
			req.Endpoint = text
		default:
			req.Params.Set(key, text)
		}
	}
	return req, nil
}

func relayParamText(key string, value any) (string, bool, error) {
	switch typed := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return typed, typed != "", nil
	case json.Number:
		return typed.String(), true, nil
	case bool:
		if typed {
			return "true", true, nil
		}
		return "false", true, nil
	default:
		return "", false, fmt.Errorf("%w: parameter %q must be a string, number or boolean", usecase.ErrInvalidInput, strings.TrimSpace(key))
	}
}
