package user

import (
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/team"
)

// User is a catalog member who writes reviews and keeps a watchlist.
type User struct {
	ID             string
	Name           string
	Username       string
	Email          string
	Bio            string
	Avatar         string
	FavoriteTeams  []team.Team
	FavoriteSports []sport.Sport
	Followers      int
	Following      int
	CreatedAt      time.Time
}
