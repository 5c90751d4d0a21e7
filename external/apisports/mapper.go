package apisports

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
)

// ExtractResponse returns the items of the upstream "response" array.
// A body that is not an envelope, or whose response is absent or not an array, yields no items.
func ExtractResponse(raw []byte) []json.RawMessage {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return []json.RawMessage{}
	}

	trimmed := bytes.TrimSpace(env.Response)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []json.RawMessage{}
	}

	var items []json.RawMessage
	if err := sonic.Unmarshal(trimmed, &items); err != nil {
		return []json.RawMessage{}
	}
	return items
}

// MapFootballFixtures converts api-football fixtures. Items that do not fit the schema are skipped.
func MapFootballFixtures(items []json.RawMessage) []game.Game {
	out := make([]game.Game, 0, len(items))
	for _, raw := range items {
		var item footballFixtureItem
		if err := sonic.Unmarshal(raw, &item); err != nil {
			continue
		}
		if item.Fixture.ID == nil || item.League.ID == nil || item.Teams.Home.ID == nil || item.Teams.Away.ID == nil {
			continue
		}
		kickoff, ok := parseFootballDate(item.Fixture.Date)
		if !ok {
			continue
		}

		country := strings.TrimSpace(item.League.Country)
		status := StatusFor(sport.KeyFootball, item.Fixture.Status.Short)
		mapped := game.Game{
			ID:    formatID(*item.Fixture.ID),
			Sport: sport.Football,
			League: league.League{
				ID:      formatID(*item.League.ID),
				Name:    strings.TrimSpace(item.League.Name),
				Logo:    derefString(item.League.Logo),
				Sport:   sport.Football,
				Country: country,
			},
			HomeTeam: mapTeam(item.Teams.Home, sport.Football, country),
			AwayTeam: mapTeam(item.Teams.Away, sport.Football, country),
			Date:     kickoff,
			Venue:    derefString(item.Fixture.Venue.Name),
			Status:   status,
		}
		if status != game.StatusUpcoming {
			mapped.HomeScore = item.Goals.Home
			mapped.AwayScore = item.Goals.Away
		}
		out = append(out, mapped)
	}
	return out
}

// MapBasketballGames converts api-basketball games. The provider has no venue, so Venue stays empty.
func MapBasketballGames(items []json.RawMessage) []game.Game {
	out := make([]game.Game, 0, len(items))
	for _, raw := range items {
		var item basketballGameItem
		if err := sonic.Unmarshal(raw, &item); err != nil {
			continue
		}
		if item.ID == nil || item.League.ID == nil || item.Teams.Home.ID == nil || item.Teams.Away.ID == nil {
			continue
		}
		tipoff, ok := parseBasketballDate(item.Date, item.Time)
		if !ok {
			continue
		}

		country := strings.TrimSpace(item.Country.Name)
		status := StatusFor(sport.KeyBasketball, item.Status.Short)
		mapped := game.Game{
			ID:    formatID(*item.ID),
			Sport: sport.Basketball,
			League: league.League{
				ID:      formatID(*item.League.ID),
				Name:    strings.TrimSpace(item.League.Name),
				Logo:    derefString(item.League.Logo),
				Sport:   sport.Basketball,
				Country: country,
			},
			HomeTeam: mapTeam(item.Teams.Home, sport.Basketball, country),
			AwayTeam: mapTeam(item.Teams.Away, sport.Basketball, country),
			Date:     tipoff,
			Status:   status,
		}
		if status != game.StatusUpcoming {
			mapped.HomeScore = item.Scores.Home.Total
			mapped.AwayScore = item.Scores.Away.Total
		}
		out = append(out, mapped)
	}
	return out
}

func MapFootballLeagues(items []json.RawMessage) []league.League {
	out := make([]league.League, 0, len(items))
	for _, raw := range items {
		var item footballLeagueItem
		if err := sonic.Unmarshal(raw, &item); err != nil || item.League.ID == nil {
			continue
		}
		out = append(out, league.League{
			ID:      formatID(*item.League.ID),
			Name:    strings.TrimSpace(item.League.Name),
			Logo:    derefString(item.League.Logo),
			Sport:   sport.Football,
			Country: strings.TrimSpace(item.Country.Name),
		})
	}
	return out
}

func MapBasketballLeagues(items []json.RawMessage) []league.League {
	out := make([]league.League, 0, len(items))
	for _, raw := range items {
		var item basketballLeagueItem
		if err := sonic.Unmarshal(raw, &item); err != nil || item.ID == nil {
			continue
		}
		out = append(out, league.League{
			ID:      formatID(*item.ID),
			Name:    strings.TrimSpace(item.Name),
			Logo:    derefString(item.Logo),
			Sport:   sport.Basketball,
			Country: strings.TrimSpace(item.Country.Name),
		})
	}
	return out
}

func mapTeam(ref teamRef, s sport.Sport, country string) team.Team {
	return team.Team{
		ID:      formatID(*ref.ID),
		Name:    strings.TrimSpace(ref.Name),
		Logo:    derefString(ref.Logo),
		Sport:   s,
		Country: country,
	}
}

func parseFootballDate(raw string) (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// parseBasketballDate accepts a full timestamp, or a plain date combined with an HH:MM time in UTC.
func parseBasketballDate(date, clock string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if parsed, err := time.Parse(time.RFC3339, date); err == nil {
		return parsed, true
	}
	if clock == "" {
		parsed, err := time.Parse(time.DateOnly, date)
		return parsed, err == nil
	}
	parsed, err := time.Parse(time.DateOnly+" 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func formatID(value int64) string {
	return strconv.FormatInt(value, 10)
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
