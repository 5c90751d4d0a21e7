package game

import (
	"fmt"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
)

// Game is one fixture between two teams of the same sport.
type Game struct {
	ID         string
	Sport      sport.Sport
	League     league.League
	HomeTeam   team.Team
	AwayTeam   team.Team
	HomeScore  *int
	AwayScore  *int
	Date       time.Time
	Venue      string
	Status     Status
	Highlights string
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if _, ok := sport.ByKey(g.Sport.ID); !ok {
		return fmt.Errorf("game %s has unsupported sport %q", g.ID, g.Sport.ID)
	}
	if g.League.Sport.ID != g.Sport.ID {
		return fmt.Errorf("game %s league sport %q differs from game sport %q", g.ID, g.League.Sport.ID, g.Sport.ID)
	}
	if g.HomeTeam.Sport.ID != g.Sport.ID || g.AwayTeam.Sport.ID != g.Sport.ID {
		return fmt.Errorf("game %s teams must play %q", g.ID, g.Sport.ID)
	}
	if !g.Status.Valid() {
		return fmt.Errorf("game %s has invalid status %q", g.ID, g.Status)
	}
	if g.Status == StatusUpcoming && (g.HomeScore != nil || g.AwayScore != nil) {
		return fmt.Errorf("game %s is upcoming but carries a score", g.ID)
	}

	return nil
}

// Filter narrows game listings. Zero values match everything.
type Filter struct {
	SportID  sport.Key
	LeagueID string
	Status   Status
}

func (f Filter) Match(g Game) bool {
	if f.SportID != "" && g.Sport.ID != f.SportID {
		return false
	}
	if f.LeagueID != "" && g.League.ID != f.LeagueID {
		return false
	}
	if f.Status != "" && g.Status != f.Status {
		return false
	}
	return true
}
