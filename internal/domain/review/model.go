package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/user"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Review is a user's rating and commentary on one game.
type Review struct {
	ID        string
	User      user.User
	Game      game.Game
	Rating    float64
	Content   string
	Likes     int
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Review) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("review id is required")
	}
	if r.User.ID == "" {
		return fmt.Errorf("review %s has no author", r.ID)
	}
	if r.Game.ID == "" {
		return fmt.Errorf("review %s has no game", r.ID)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("review %s rating %.1f out of range [%.0f, %.0f]", r.ID, r.Rating, MinRating, MaxRating)
	}
	if strings.TrimSpace(r.Content) == "" {
		return fmt.Errorf("review %s content is required", r.ID)
	}
	if r.Likes < 0 {
		return fmt.Errorf("review %s likes must be >= 0", r.ID)
	}

	return nil
}

// TagCount is how many reviews carry a tag. Tags compare case-sensitively.
type TagCount struct {
	Tag   string
	Count int
}
