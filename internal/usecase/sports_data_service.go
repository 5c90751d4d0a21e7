package usecase

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/gamelog/external/apisports"
	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	footballGamesEndpoint   = "fixtures"
	basketballGamesEndpoint = "games"
	leaguesEndpoint         = "leagues"

	DefaultWindowDays = 7
)

// GamesResult never carries an error; failures surface as an empty list plus a notice.
type GamesResult struct {
	Games  []game.Game
	Notice *Notice
}

type LeaguesResult struct {
	Leagues []league.League
	Notice  *Notice
}

// GameWindows splits a sport's schedule around today.
type GameWindows struct {
	Upcoming GamesResult
	Finished GamesResult
}

type AllLeagues struct {
	Football   LeaguesResult
	Basketball LeaguesResult
}

// SportsDataService fetches live provider data through the relay and normalizes it.
type SportsDataService struct {
	relay  Relay
	logger *logging.Logger
	now    func() time.Time
}

func NewSportsDataService(relay Relay, logger *logging.Logger) *SportsDataService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SportsDataService{
		relay:  relay,
		logger: logger,
		now:    time.Now,
	}
}

func (s *SportsDataService) FetchFootballGames(ctx context.Context, params url.Values) GamesResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchFootballGames")
	defer span.End()

	return s.fetchGames(ctx, sport.KeyFootball, params)
}

func (s *SportsDataService) FetchBasketballGames(ctx context.Context, params url.Values) GamesResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchBasketballGames")
	defer span.End()

	return s.fetchGames(ctx, sport.KeyBasketball, params)
}

// FetchGames dispatches to the per-sport fetch.
func (s *SportsDataService) FetchGames(ctx context.Context, key sport.Key, params url.Values) GamesResult {
	if key == sport.KeyBasketball {
		return s.FetchBasketballGames(ctx, params)
	}
	return s.FetchFootballGames(ctx, params)
}

func (s *SportsDataService) FetchFootballLeagues(ctx context.Context, country string) LeaguesResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchFootballLeagues")
	defer span.End()

	return s.fetchLeagues(ctx, sport.KeyFootball, country)
}

func (s *SportsDataService) FetchBasketballLeagues(ctx context.Context, country string) LeaguesResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchBasketballLeagues")
	defer span.End()

	return s.fetchLeagues(ctx, sport.KeyBasketball, country)
}

func (s *SportsDataService) FetchLeagues(ctx context.Context, key sport.Key, country string) LeaguesResult {
	if key == sport.KeyBasketball {
		return s.FetchBasketballLeagues(ctx, country)
	}
	return s.FetchFootballLeagues(ctx, country)
}

// FetchGameWindows loads the upcoming and finished windows concurrently. Each side fails on its own.
func (s *SportsDataService) FetchGameWindows(ctx context.Context, key sport.Key, params url.Values) GameWindows {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchGameWindows")
	defer span.End()

	upcomingParams, finishedParams := windowParams(key, params, s.now().UTC(), DefaultWindowDays)

	var out GameWindows
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Upcoming = narrowGames(s.fetchGames(ctx, key, upcomingParams), upcomingOnly)
	})
	wg.Go(func() {
		out.Finished = narrowGames(s.fetchGames(ctx, key, finishedParams), finishedOnly)
	})
	wg.Wait()

	out.Upcoming = dropAdvanced(out.Upcoming, out.Finished.Games)
	return out
}

func (s *SportsDataService) FetchAllLeagues(ctx context.Context, country string) AllLeagues {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.FetchAllLeagues")
	defer span.End()

	var out AllLeagues
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Football = s.fetchLeagues(ctx, sport.KeyFootball, country)
	})
	wg.Go(func() {
		out.Basketball = s.fetchLeagues(ctx, sport.KeyBasketball, country)
	})
	wg.Wait()

	return out
}

func (s *SportsDataService) fetchGames(ctx context.Context, key sport.Key, params url.Values) GamesResult {
	endpoint := footballGamesEndpoint
	if key == sport.KeyBasketball {
		endpoint = basketballGamesEndpoint
	}

	result, err := s.relay.Forward(ctx, RelayRequest{Sport: key.String(), Endpoint: endpoint, Params: params})
	if err != nil {
		notice := s.noticeFor(ctx, key, endpoint, err)
		return GamesResult{Games: []game.Game{}, Notice: &notice}
	}

	items := apisports.ExtractResponse(result.Body)
	var games []game.Game
	if key == sport.KeyBasketball {
		games = apisports.MapBasketballGames(items)
	} else {
		games = apisports.MapFootballFixtures(items)
	}
	if len(games) == 0 {
		notice := noticeNoGames
		return GamesResult{Games: []game.Game{}, Notice: &notice}
	}

	return GamesResult{Games: games}
}

func (s *SportsDataService) fetchLeagues(ctx context.Context, key sport.Key, country string) LeaguesResult {
	params := url.Values{}
	if country = strings.TrimSpace(country); country != "" {
		params.Set("country", country)
	}

	result, err := s.relay.Forward(ctx, RelayRequest{Sport: key.String(), Endpoint: leaguesEndpoint, Params: params})
	if err != nil {
		notice := s.noticeFor(ctx, key, leaguesEndpoint, err)
		return LeaguesResult{Leagues: []league.League{}, Notice: &notice}
	}

	items := apisports.ExtractResponse(result.Body)
	var leagues []league.League
	if key == sport.KeyBasketball {
		leagues = apisports.MapBasketballLeagues(items)
	} else {
		leagues = apisports.MapFootballLeagues(items)
	}
	if len(leagues) == 0 {
		notice := noticeNoLeagues
		return LeaguesResult{Leagues: []league.League{}, Notice: &notice}
	}

	return LeaguesResult{Leagues: leagues}
}

func (s *SportsDataService) noticeFor(ctx context.Context, key sport.Key, endpoint string, err error) Notice {
	var upstreamErr *UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && upstreamErr.RateLimited():
		s.logger.WarnContext(ctx, "sports data rate limited", "sport", key, "endpoint", endpoint)
		return noticeRateLimited
	case errors.As(err, &upstreamErr):
		s.logger.WarnContext(ctx, "sports data provider error", "sport", key, "endpoint", endpoint, "error", err)
		return noticeProviderError
	default:
		s.logger.ErrorContext(ctx, "sports data fetch failed", "sport", key, "endpoint", endpoint, "error", err)
		return noticeUnreachable
	}
}

// windowParams derives the upstream date filters for both windows. Football takes a date range,
// basketball a single day.
func windowParams(key sport.Key, base url.Values, now time.Time, days int) (url.Values, url.Values) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	upcoming := cloneValues(base)
	finished := cloneValues(base)
	if key == sport.KeyBasketball {
		upcoming.Set("date", today.Format(time.DateOnly))
		finished.Set("date", yesterday.Format(time.DateOnly))
		return upcoming, finished
	}

	upcoming.Set("from", today.Format(time.DateOnly))
	upcoming.Set("to", today.AddDate(0, 0, days).Format(time.DateOnly))
	finished.Set("from", today.AddDate(0, 0, -days).Format(time.DateOnly))
	finished.Set("to", yesterday.Format(time.DateOnly))
	return upcoming, finished
}

// dropAdvanced removes upcoming entries that the finished window reports at a later status.
func dropAdvanced(upcoming GamesResult, finished []game.Game) GamesResult {
	latest := make(map[string]game.Status, len(finished))
	for _, item := range finished {
		latest[item.ID] = item.Status
	}

	kept := make([]game.Game, 0, len(upcoming.Games))
	for _, item := range upcoming.Games {
		if status, ok := latest[item.ID]; ok && status.Rank() > item.Status.Rank() {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(upcoming.Games) {
		return upcoming
	}
	return narrowGames(GamesResult{Games: kept, Notice: upcoming.Notice}, keepAll)
}

func keepAll(items []game.Game) []game.Game { return items }

func narrowGames(result GamesResult, keep func([]game.Game) []game.Game) GamesResult {
	result.Games = keep(result.Games)
	if len(result.Games) == 0 && result.Notice == nil {
		notice := noticeNoGames
		result.Notice = &notice
	}
	return result
}

func upcomingOnly(items []game.Game) []game.Game {
	out := make([]game.Game, 0, len(items))
	for _, item := range items {
		if item.Status != game.StatusFinished {
			out = append(out, item)
		}
	}
	sortGamesByDate(out, true)
	return out
}

func finishedOnly(items []game.Game) []game.Game {
	out := make([]game.Game, 0, len(items))
	for _, item := range items {
		if item.Status == game.StatusFinished {
			out = append(out, item)
		}
	}
	sortGamesByDate(out, false)
	return out
}

func sortGamesByDate(items []game.Game, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].ID < items[j].ID
		}
		if ascending {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Date.After(items[j].Date)
	})
}

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for key, values := range in {
		out[key] = append([]string(nil), values...)
	}
	return out
}
