package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/gamelog/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/gamelog/internal/platform/id"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

type fakeRelay struct {
	mu       sync.Mutex
	requests []usecase.RelayRequest
	forward  func(req usecase.RelayRequest) (usecase.RelayResult, error)
}

func (f *fakeRelay) Forward(_ context.Context, req usecase.RelayRequest) (usecase.RelayResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.forward == nil {
		return usecase.RelayResult{StatusCode: http.StatusOK, Body: []byte(`{"errors":[],"response":[]}`)}, nil
	}
	return f.forward(req)
}

func (f *fakeRelay) calls() []usecase.RelayRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]usecase.RelayRequest(nil), f.requests...)
}

func newTestRouter(t *testing.T, relay usecase.Relay) http.Handler {
	t.Helper()

	data := memory.SeedDataset(time.Now())
	gameRepo := memory.NewGameRepository(data.Games)
	catalog := usecase.NewCatalogService(
		gameRepo,
		memory.NewReviewRepository(data.Reviews),
		memory.NewLeagueRepository(data.Leagues),
		memory.NewUserRepository(data.Users),
		id.NewUUIDGenerator(),
		logging.NewNop(),
	)
	watchlists := usecase.NewWatchlistService(
		memory.NewWatchlistRepository(data.Watchlists),
		gameRepo,
		id.NewUUIDGenerator(),
		logging.NewNop(),
	)
	sportsData := usecase.NewSportsDataService(relay, logging.NewNop())

	handler := NewHandler(relay, catalog, sportsData, watchlists, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		SwaggerEnabled:     true,
		DefaultUserID:      memory.DemoUserID,
	})
}

func doRequest(t *testing.T, router http.Handler, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()

	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got=%T %v", body["data"], body["data"])
	}
	return items
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &fakeRelay{})

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOpenAPI_Served(t *testing.T) {
	router := newTestRouter(t, &fakeRelay{})

	rec := doRequest(t, router, http.MethodGet, "/openapi.yaml", "", nil)
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("/functions/v1/football-api")) {
		t.Fatalf("unexpected openapi response: status=%d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/docs", "", nil)
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte(`url: "/openapi.yaml"`)) {
		t.Fatalf("unexpected swagger ui: status=%d body=%s", rec.Code, rec.Body.String())
	}
}
