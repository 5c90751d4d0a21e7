package relayclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

func TestForward_UnwrapsSuccessEnvelope(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	var gotAuth, gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got=%s", r.Method)
		}
		gotAuth = r.Header.Get("authorization")
		gotAPIKey = r.Header.Get("apikey")
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("decode request body %q: %v", raw, err)
		}
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"results":0,"response":[]}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{HTTPClient: server.Client(), URL: server.URL, APIKey: "anon"})
	result, err := client.Forward(context.Background(), usecase.RelayRequest{
		Sport:    "basketball",
		Endpoint: "games",
		Params:   url.Values{"league": {"12"}, "season": {"2023-2024"}, "empty": {""}},
	})
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if string(result.Body) != `{"results":0,"response":[]}` {
		t.Fatalf("unexpected body: %s", result.Body)
	}
	if gotBody["sport"] != "basketball" || gotBody["endpoint"] != "games" || gotBody["league"] != "12" || gotBody["season"] != "2023-2024" {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if _, ok := gotBody["empty"]; ok {
		t.Fatalf("expected empty param to be dropped: %v", gotBody)
	}
	if gotAuth != "Bearer anon" || gotAPIKey != "anon" {
		t.Fatalf("unexpected auth headers: authorization=%q apikey=%q", gotAuth, gotAPIKey)
	}
}

func TestForward_UpstreamErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"errors":{"requests":"You have reached the request limit for the day"},"message":"API Error occurred"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{HTTPClient: server.Client(), URL: server.URL})
	_, err := client.Forward(context.Background(), usecase.RelayRequest{})

	var upstreamErr *usecase.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got=%v", err)
	}
	if upstreamErr.StatusCode != http.StatusTooManyRequests || !upstreamErr.RateLimited() {
		t.Fatalf("unexpected upstream error: %+v", upstreamErr)
	}
}

func TestForward_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"API_FOOTBALL_KEY is not set","message":"Server error occurred"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{HTTPClient: server.Client(), URL: server.URL})
	_, err := client.Forward(context.Background(), usecase.RelayRequest{})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got=%v", err)
	}
}

func TestForward_NonEnvelopeBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{HTTPClient: server.Client(), URL: server.URL})
	_, err := client.Forward(context.Background(), usecase.RelayRequest{})
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected malformed envelope error, got=%v", err)
	}
}

func TestForward_BodyOverLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"results":3,"response":[1,2,3]}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{HTTPClient: server.Client(), URL: server.URL, MaxBodyBytes: 16})
	_, err := client.Forward(context.Background(), usecase.RelayRequest{})
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got=%v", err)
	}
	if errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("oversized body must not be reported as a malformed envelope: %v", err)
	}
}

func TestForward_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(ClientConfig{URL: serverURL})
	_, err := client.Forward(context.Background(), usecase.RelayRequest{})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got=%v", err)
	}
}

func TestEncodeRequest_IsDeterministic(t *testing.T) {
	t.Parallel()

	body, err := encodeRequest(usecase.RelayRequest{
		Sport:    "football",
		Endpoint: "fixtures",
		Params:   url.Values{"team": {"42", "49"}, "league": {"39"}},
	})
	if err != nil {
		t.Fatalf("encode request: %v", err)
	}
	want := `{"endpoint":"fixtures","league":"39","sport":"football","team":"42"}`
	if string(body) != want {
		t.Fatalf("unexpected body got=%s want=%s", body, want)
	}
}
