package memory

import (
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/review"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
	"github.com/riskibarqy/gamelog/internal/domain/user"
	"github.com/riskibarqy/gamelog/internal/domain/watchlist"
)

const (
	LeagueIDPremierLeague = "1"
	LeagueIDLaLiga        = "2"
	LeagueIDNBA           = "3"

	TeamIDArsenal    = "1"
	TeamIDChelsea    = "2"
	TeamIDBarcelona  = "3"
	TeamIDRealMadrid = "4"
	TeamIDLakers     = "5"
	TeamIDCeltics    = "6"

	UserIDJoao  = "1"
	UserIDMaria = "2"
	DemoUserID  = UserIDJoao

	GameIDArsenalDerby  = "1"
	GameIDElClasico     = "2"
	GameIDLakersCeltics = "3"
	GameIDChelseaHome   = "4"
	GameIDCelticsHome   = "5"
)

// Dataset is the fixed catalog built once at process start.
type Dataset struct {
	Leagues    []league.League
	Teams      []team.Team
	Users      []user.User
	Games      []game.Game
	Reviews    []review.Review
	Watchlists []watchlist.Watchlist
}

// SeedDataset builds every record from the same team, league and user values so references always agree.
// Upcoming games are scheduled relative to now.
func SeedDataset(now time.Time) Dataset {
	leagues := SeedLeagues()
	teams := SeedTeams()
	users := SeedUsers(teams)
	games := SeedGames(leagues, teams, now)
	reviews := SeedReviews(users, games)

	return Dataset{
		Leagues:    leagues,
		Teams:      teams,
		Users:      users,
		Games:      games,
		Reviews:    reviews,
		Watchlists: SeedWatchlists(games, now),
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDPremierLeague, Name: "Premier League", Logo: "https://media.api-sports.io/football/leagues/39.png", Sport: sport.Football, Country: "England"},
		{ID: LeagueIDLaLiga, Name: "La Liga", Logo: "https://media.api-sports.io/football/leagues/140.png", Sport: sport.Football, Country: "Spain"},
		{ID: LeagueIDNBA, Name: "NBA", Logo: "https://media.api-sports.io/basketball/leagues/12.png", Sport: sport.Basketball, Country: "USA"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDArsenal, Name: "Arsenal", Logo: "https://media.api-sports.io/football/teams/42.png", Sport: sport.Football, Country: "England"},
		{ID: TeamIDChelsea, Name: "Chelsea", Logo: "https://media.api-sports.io/football/teams/49.png", Sport: sport.Football, Country: "England"},
		{ID: TeamIDBarcelona, Name: "Barcelona", Logo: "https://media.api-sports.io/football/teams/529.png", Sport: sport.Football, Country: "Spain"},
		{ID: TeamIDRealMadrid, Name: "Real Madrid", Logo: "https://media.api-sports.io/football/teams/541.png", Sport: sport.Football, Country: "Spain"},
		{ID: TeamIDLakers, Name: "Los Angeles Lakers", Logo: "https://media.api-sports.io/basketball/teams/139.png", Sport: sport.Basketball, Country: "USA"},
		{ID: TeamIDCeltics, Name: "Boston Celtics", Logo: "https://media.api-sports.io/basketball/teams/133.png", Sport: sport.Basketball, Country: "USA"},
	}
}

func SeedUsers(teams []team.Team) []user.User {
	byID := indexTeams(teams)
	return []user.User{
		{
			ID:             UserIDJoao,
			Name:           "João Silva",
			Username:       "joaosilva",
			Email:          "joao@example.com",
			Bio:            "Sports fanatic, especially football and NBA basketball",
			Avatar:         "https://i.pravatar.cc/150?img=1",
			FavoriteTeams:  []team.Team{byID[TeamIDArsenal], byID[TeamIDLakers]},
			FavoriteSports: []sport.Sport{sport.Football, sport.Basketball},
			Followers:      120,
			Following:      84,
			CreatedAt:      time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             UserIDMaria,
			Name:           "Maria Santos",
			Username:       "mariasantos",
			Email:          "maria@example.com",
			Bio:            "Love watching Premier League matches!",
			Avatar:         "https://i.pravatar.cc/150?img=5",
			FavoriteTeams:  []team.Team{byID[TeamIDChelsea]},
			FavoriteSports: []sport.Sport{sport.Football},
			Followers:      95,
			Following:      102,
			CreatedAt:      time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedGames(leagues []league.League, teams []team.Team, now time.Time) []game.Game {
	leagueByID := make(map[string]league.League, len(leagues))
	for _, item := range leagues {
		leagueByID[item.ID] = item
	}
	teamByID := indexTeams(teams)
	now = now.UTC()

	return []game.Game{
		{
			ID:         GameIDArsenalDerby,
			Sport:      sport.Football,
			League:     leagueByID[LeagueIDPremierLeague],
			HomeTeam:   teamByID[TeamIDArsenal],
			AwayTeam:   teamByID[TeamIDChelsea],
			HomeScore:  intPtr(2),
			AwayScore:  intPtr(1),
			Date:       time.Date(2023, 11, 15, 15, 0, 0, 0, time.UTC),
			Venue:      "Emirates Stadium",
			Status:     game.StatusFinished,
			Highlights: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			ID:        GameIDElClasico,
			Sport:     sport.Football,
			League:    leagueByID[LeagueIDLaLiga],
			HomeTeam:  teamByID[TeamIDBarcelona],
			AwayTeam:  teamByID[TeamIDRealMadrid],
			HomeScore: intPtr(3),
			AwayScore: intPtr(3),
			Date:      time.Date(2023, 11, 18, 20, 0, 0, 0, time.UTC),
			Venue:     "Camp Nou",
			Status:    game.StatusFinished,
		},
		{
			ID:        GameIDLakersCeltics,
			Sport:     sport.Basketball,
			League:    leagueByID[LeagueIDNBA],
			HomeTeam:  teamByID[TeamIDLakers],
			AwayTeam:  teamByID[TeamIDCeltics],
			HomeScore: intPtr(108),
			AwayScore: intPtr(115),
			Date:      time.Date(2023, 11, 20, 18, 30, 0, 0, time.UTC),
			Venue:     "Crypto.com Arena",
			Status:    game.StatusFinished,
		},
		{
			ID:       GameIDChelseaHome,
			Sport:    sport.Football,
			League:   leagueByID[LeagueIDPremierLeague],
			HomeTeam: teamByID[TeamIDChelsea],
			AwayTeam: teamByID[TeamIDArsenal],
			Date:     now.Add(3 * 24 * time.Hour),
			Venue:    "Stamford Bridge",
			Status:   game.StatusUpcoming,
		},
		{
			ID:       GameIDCelticsHome,
			Sport:    sport.Basketball,
			League:   leagueByID[LeagueIDNBA],
			HomeTeam: teamByID[TeamIDCeltics],
			AwayTeam: teamByID[TeamIDLakers],
			Date:     now.Add(5 * 24 * time.Hour),
			Venue:    "TD Garden",
			Status:   game.StatusUpcoming,
		},
	}
}

func SeedReviews(users []user.User, games []game.Game) []review.Review {
	userByID := make(map[string]user.User, len(users))
	for _, item := range users {
		userByID[item.ID] = item
	}
	gameByID := make(map[string]game.Game, len(games))
	for _, item := range games {
		gameByID[item.ID] = item
	}

	at := func(day, hour, minute int) time.Time {
		return time.Date(2023, 11, day, hour, minute, 0, 0, time.UTC)
	}

	return []review.Review{
		{
			ID:        "1",
			User:      userByID[UserIDJoao],
			Game:      gameByID[GameIDArsenalDerby],
			Rating:    4.5,
			Content:   "What a match! Arsenal played brilliantly in the first half. Chelsea made a good comeback attempt but it wasn't enough.",
			Likes:     24,
			Tags:      []string{"thriller", "derby", "comeback"},
			CreatedAt: at(15, 18, 30),
			UpdatedAt: at(15, 18, 30),
		},
		{
			ID:        "2",
			User:      userByID[UserIDMaria],
			Game:      gameByID[GameIDArsenalDerby],
			Rating:    3.5,
			Content:   "Decent match, but I've seen better derbies. The referee made some questionable calls.",
			Likes:     8,
			Tags:      []string{"derby", "controversial"},
			CreatedAt: at(15, 19, 15),
			UpdatedAt: at(15, 19, 15),
		},
		{
			ID:        "3",
			User:      userByID[UserIDJoao],
			Game:      gameByID[GameIDLakersCeltics],
			Rating:    5,
			Content:   "One of the best NBA games I've watched this season! Boston's defense in the fourth quarter was spectacular.",
			Likes:     32,
			Tags:      []string{"classic", "defense", "clutch"},
			CreatedAt: at(20, 21, 45),
			UpdatedAt: at(20, 21, 45),
		},
	}
}

// SeedWatchlists gives the demo user every upcoming game.
func SeedWatchlists(games []game.Game, now time.Time) []watchlist.Watchlist {
	ids := make([]string, 0, len(games))
	for _, item := range games {
		if item.Status == game.StatusUpcoming {
			ids = append(ids, item.ID)
		}
	}

	return []watchlist.Watchlist{
		{
			ID:        "wl-" + DemoUserID,
			UserID:    DemoUserID,
			GameIDs:   ids,
			CreatedAt: now.UTC(),
			UpdatedAt: now.UTC(),
		},
	}
}

func indexTeams(teams []team.Team) map[string]team.Team {
	out := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		out[item.ID] = item
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
