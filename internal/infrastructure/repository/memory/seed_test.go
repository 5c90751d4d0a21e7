package memory

import (
	"testing"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
)

func TestSeedDataset_ReferentialIntegrity(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	data := SeedDataset(now)

	if len(data.Games) != 5 || len(data.Reviews) != 3 || len(data.Users) != 2 || len(data.Leagues) != 3 || len(data.Teams) != 6 {
		t.Fatalf("unexpected dataset sizes: games=%d reviews=%d users=%d leagues=%d teams=%d",
			len(data.Games), len(data.Reviews), len(data.Users), len(data.Leagues), len(data.Teams))
	}

	gameIDs := make(map[string]struct{}, len(data.Games))
	for _, item := range data.Games {
		if err := item.Validate(); err != nil {
			t.Fatalf("seed game invalid: %v", err)
		}
		gameIDs[item.ID] = struct{}{}
	}
	for _, item := range data.Leagues {
		if err := item.Validate(); err != nil {
			t.Fatalf("seed league invalid: %v", err)
		}
	}
	for _, item := range data.Reviews {
		if err := item.Validate(); err != nil {
			t.Fatalf("seed review invalid: %v", err)
		}
		if _, ok := gameIDs[item.Game.ID]; !ok {
			t.Fatalf("review %s references unknown game %s", item.ID, item.Game.ID)
		}
	}
	for _, item := range data.Watchlists {
		if err := item.Validate(); err != nil {
			t.Fatalf("seed watchlist invalid: %v", err)
		}
		for _, id := range item.GameIDs {
			if _, ok := gameIDs[id]; !ok {
				t.Fatalf("watchlist references unknown game %s", id)
			}
		}
	}
}

func TestSeedGames_UpcomingRelativeToNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	games := SeedGames(SeedLeagues(), SeedTeams(), now)

	for _, item := range games {
		if item.Status != game.StatusUpcoming {
			continue
		}
		if !item.Date.After(now) {
			t.Fatalf("upcoming game %s must be in the future, got=%s", item.ID, item.Date)
		}
		if item.HomeScore != nil || item.AwayScore != nil {
			t.Fatalf("upcoming game %s must not carry a score", item.ID)
		}
	}
	if got := games[3].Date.Sub(now); got != 72*time.Hour {
		t.Fatalf("expected chelsea home game in 3 days, got=%s", got)
	}
}

func TestSeedWatchlists_DemoUserHoldsUpcomingGames(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	lists := SeedWatchlists(SeedGames(SeedLeagues(), SeedTeams(), now), now)
	if len(lists) != 1 || lists[0].UserID != DemoUserID {
		t.Fatalf("unexpected watchlists: %+v", lists)
	}
	if len(lists[0].GameIDs) != 2 || lists[0].GameIDs[0] != GameIDChelseaHome || lists[0].GameIDs[1] != GameIDCelticsHome {
		t.Fatalf("unexpected watchlist games: %v", lists[0].GameIDs)
	}
}
