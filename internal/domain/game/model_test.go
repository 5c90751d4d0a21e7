package game

import (
	"testing"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func footballGame() Game {
	return Game{
		ID:       "g1",
		Sport:    sport.Football,
		League:   league.League{ID: "39", Name: "Premier League", Sport: sport.Football},
		HomeTeam: team.Team{ID: "42", Name: "Arsenal", Sport: sport.Football},
		AwayTeam: team.Team{ID: "49", Name: "Chelsea", Sport: sport.Football},
		Date:     time.Date(2023, 11, 15, 15, 0, 0, 0, time.UTC),
		Status:   StatusUpcoming,
	}
}

func TestGameValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *Game)
		wantErr bool
	}{
		{name: "valid upcoming", mutate: func(g *Game) {}},
		{name: "finished with zero score", mutate: func(g *Game) {
			g.Status = StatusFinished
			g.HomeScore = intPtr(0)
			g.AwayScore = intPtr(0)
		}},
		{name: "missing id", mutate: func(g *Game) { g.ID = "" }, wantErr: true},
		{name: "league of other sport", mutate: func(g *Game) { g.League.Sport = sport.Basketball }, wantErr: true},
		{name: "away team of other sport", mutate: func(g *Game) { g.AwayTeam.Sport = sport.Basketball }, wantErr: true},
		{name: "upcoming with score", mutate: func(g *Game) { g.HomeScore = intPtr(1) }, wantErr: true},
		{name: "unknown status", mutate: func(g *Game) { g.Status = "postponed" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := footballGame()
			tc.mutate(&g)
			err := g.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStatusRank(t *testing.T) {
	if !(StatusUpcoming.Rank() < StatusLive.Rank() && StatusLive.Rank() < StatusFinished.Rank()) {
		t.Fatalf("unexpected rank order")
	}
}

func TestFilterMatch(t *testing.T) {
	g := footballGame()
	if !(Filter{}).Match(g) {
		t.Fatalf("empty filter must match")
	}
	if !(Filter{SportID: sport.KeyFootball, LeagueID: "39", Status: StatusUpcoming}).Match(g) {
		t.Fatalf("full filter must match")
	}
	if (Filter{SportID: sport.KeyBasketball}).Match(g) {
		t.Fatalf("sport filter must exclude")
	}
	if (Filter{LeagueID: "140"}).Match(g) {
		t.Fatalf("league filter must exclude")
	}
}
