package httpapi

import (
	"net/http"
	"testing"

	"github.com/riskibarqy/gamelog/internal/usecase"
)

const liveFixturesBody = `{
  "errors": [],
  "response": [
    {
      "fixture": {"id": 1035, "date": "2024-03-02T15:00:00+00:00", "venue": {"name": "Emirates Stadium"}, "status": {"short": "NS"}},
      "league": {"id": 39, "name": "Premier League", "country": "England", "logo": "https://media.api-sports.io/football/leagues/39.png"},
      "teams": {"home": {"id": 42, "name": "Arsenal", "logo": null}, "away": {"id": 49, "name": "Chelsea", "logo": null}},
      "goals": {"home": null, "away": null}
    }
  ]
}`

func TestListLiveGames_NormalizesFixtures(t *testing.T) {
	relay := &fakeRelay{forward: func(usecase.RelayRequest) (usecase.RelayResult, error) {
		return usecase.RelayResult{StatusCode: http.StatusOK, Body: []byte(liveFixturesBody)}, nil
	}}
	router := newTestRouter(t, relay)

	rec := doRequest(t, router, http.MethodGet, "/v1/live/football/games?league=39&season=2023", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	games := data["games"].([]any)
	if len(games) != 1 {
		t.Fatalf("expected one game, got=%v", games)
	}
	first := games[0].(map[string]any)
	if first["status"] != "upcoming" || first["venue"] != "Emirates Stadium" || first["homeScore"] != nil {
		t.Fatalf("unexpected normalized game: %v", first)
	}
	if _, ok := data["notice"]; ok {
		t.Fatalf("did not expect a notice on success, got=%v", data["notice"])
	}

	calls := relay.calls()
	if len(calls) != 1 || calls[0].Sport != "football" || calls[0].Endpoint != "fixtures" || calls[0].Params.Get("league") != "39" {
		t.Fatalf("unexpected relay request: %+v", calls)
	}
}

func TestListLiveGames_RateLimitBecomesNotice(t *testing.T) {
	relay := &fakeRelay{forward: func(usecase.RelayRequest) (usecase.RelayResult, error) {
		return usecase.RelayResult{}, &usecase.UpstreamError{
			StatusCode: http.StatusOK,
			Errors:     map[string]any{"requests": "You have reached the request limit for the day"},
		}
	}}
	router := newTestRouter(t, relay)

	rec := doRequest(t, router, http.MethodGet, "/v1/live/basketball/games?league=12&season=2023-2024", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with notice, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if games := data["games"].([]any); len(games) != 0 {
		t.Fatalf("expected no games, got=%v", games)
	}
	notice, ok := data["notice"].(map[string]any)
	if !ok || notice["title"] != "Request limit reached" || notice["level"] != "warning" {
		t.Fatalf("expected rate limit notice, got=%v", data["notice"])
	}
}

func TestListLiveGames_UnknownSport(t *testing.T) {
	relay := &fakeRelay{}
	router := newTestRouter(t, relay)

	rec := doRequest(t, router, http.MethodGet, "/v1/live/hockey/games", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(relay.calls()) != 0 {
		t.Fatalf("unknown sport must not reach the relay")
	}
}

func TestListLiveGameWindows_FetchesBothWindows(t *testing.T) {
	relay := &fakeRelay{}
	router := newTestRouter(t, relay)

	rec := doRequest(t, router, http.MethodGet, "/v1/live/basketball/windows?league=12", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	for _, window := range []string{"upcoming", "finished"} {
		item, ok := data[window].(map[string]any)
		if !ok {
			t.Fatalf("missing %s window: %v", window, data)
		}
		notice, _ := item["notice"].(map[string]any)
		if notice["title"] != "No games found" {
			t.Fatalf("expected empty notice for %s, got=%v", window, item["notice"])
		}
	}
	if calls := relay.calls(); len(calls) != 2 {
		t.Fatalf("expected two relay calls, got=%d", len(calls))
	}
}

func TestListAllLiveLeagues(t *testing.T) {
	relay := &fakeRelay{}
	router := newTestRouter(t, relay)

	rec := doRequest(t, router, http.MethodGet, "/v1/live/leagues?country=England", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if _, ok := data["football"]; !ok {
		t.Fatalf("expected football leagues key, got=%v", data)
	}
	calls := relay.calls()
	if len(calls) != 2 {
		t.Fatalf("expected one call per sport, got=%d", len(calls))
	}
	for _, call := range calls {
		if call.Endpoint != "leagues" || call.Params.Get("country") != "England" {
			t.Fatalf("unexpected leagues request: %+v", call)
		}
	}
}
