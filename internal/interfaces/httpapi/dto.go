package httpapi

import (
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/review"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
	"github.com/riskibarqy/gamelog/internal/domain/user"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

type createReviewRequest struct {
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Content string   `json:"content" validate:"required,max=4000"`
	Tags    []string `json:"tags" validate:"max=10,dive,max=40"`
}

type addWatchlistRequest struct {
	GameID string `json:"game_id" validate:"required"`
}

type sportDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type leagueDTO struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Logo    string   `json:"logo"`
	Sport   sportDTO `json:"sport"`
	Country string   `json:"country"`
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
}

// Scores stay null until a game has one; 0 is a real score.
type gameDTO struct {
	ID         string    `json:"id"`
	Sport      sportDTO  `json:"sport"`
	League     leagueDTO `json:"league"`
	HomeTeam   teamDTO   `json:"homeTeam"`
	AwayTeam   teamDTO   `json:"awayTeam"`
	HomeScore  *int      `json:"homeScore"`
	AwayScore  *int      `json:"awayScore"`
	Date       string    `json:"date"`
	Venue      string    `json:"venue"`
	Status     string    `json:"status"`
	Highlights string    `json:"highlights,omitempty"`
}

type userSummaryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type reviewDTO struct {
	ID        string         `json:"id"`
	User      userSummaryDTO `json:"user"`
	Game      gameDTO        `json:"game"`
	Rating    float64        `json:"rating"`
	Content   string         `json:"content"`
	Likes     int            `json:"likes"`
	Tags      []string       `json:"tags"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

type tagCountDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type noticeDTO struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type liveGamesDTO struct {
	Games  []gameDTO  `json:"games"`
	Notice *noticeDTO `json:"notice,omitempty"`
}

type liveLeaguesDTO struct {
	Leagues []leagueDTO `json:"leagues"`
	Notice  *noticeDTO  `json:"notice,omitempty"`
}

type gameWindowsDTO struct {
	Upcoming liveGamesDTO `json:"upcoming"`
	Finished liveGamesDTO `json:"finished"`
}

type allLeaguesDTO struct {
	Football   liveLeaguesDTO `json:"football"`
	Basketball liveLeaguesDTO `json:"basketball"`
}

type watchlistDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Games     []gameDTO `json:"games"`
	UpdatedAt string    `json:"updatedAt,omitempty"`
}

func sportToDTO(s sport.Sport) sportDTO {
	return sportDTO{ID: string(s.ID), Name: s.Name, Icon: s.Icon}
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:      l.ID,
		Name:    l.Name,
		Logo:    l.Logo,
		Sport:   sportToDTO(l.Sport),
		Country: l.Country,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Logo: t.Logo, Country: t.Country}
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		Sport:      sportToDTO(g.Sport),
		League:     leagueToDTO(g.League),
		HomeTeam:   teamToDTO(g.HomeTeam),
		AwayTeam:   teamToDTO(g.AwayTeam),
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Date:       formatTime(g.Date),
		Venue:      g.Venue,
		Status:     string(g.Status),
		Highlights: g.Highlights,
	}
}

func gamesToDTO(items []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameToDTO(item))
	}
	return out
}

func leaguesToDTO(items []league.League) []leagueDTO {
	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	return out
}

func userToSummaryDTO(u user.User) userSummaryDTO {
	return userSummaryDTO{ID: u.ID, Name: u.Name, Username: u.Username, Avatar: u.Avatar}
}

func reviewToDTO(r review.Review) reviewDTO {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return reviewDTO{
		ID:        r.ID,
		User:      userToSummaryDTO(r.User),
		Game:      gameToDTO(r.Game),
		Rating:    r.Rating,
		Content:   r.Content,
		Likes:     r.Likes,
		Tags:      tags,
		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}
}

func reviewsToDTO(items []review.Review) []reviewDTO {
	out := make([]reviewDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reviewToDTO(item))
	}
	return out
}

func noticeToDTO(n *usecase.Notice) *noticeDTO {
	if n == nil {
		return nil
	}
	return &noticeDTO{Level: string(n.Level), Title: n.Title, Message: n.Message}
}

func liveGamesToDTO(result usecase.GamesResult) liveGamesDTO {
	return liveGamesDTO{Games: gamesToDTO(result.Games), Notice: noticeToDTO(result.Notice)}
}

func liveLeaguesToDTO(result usecase.LeaguesResult) liveLeaguesDTO {
	return liveLeaguesDTO{Leagues: leaguesToDTO(result.Leagues), Notice: noticeToDTO(result.Notice)}
}

func watchlistToDTO(view usecase.WatchlistView) watchlistDTO {
	return watchlistDTO{
		ID:        view.Watchlist.ID,
		UserID:    view.Watchlist.UserID,
		Games:     gamesToDTO(view.Games),
		UpdatedAt: formatTime(view.Watchlist.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
