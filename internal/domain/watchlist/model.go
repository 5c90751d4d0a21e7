package watchlist

import (
	"fmt"
	"slices"
	"time"
)

// Watchlist holds the games a user plans to watch, in insertion order.
type Watchlist struct {
	ID        string
	UserID    string
	GameIDs   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Watchlist) Validate() error {
	if w.UserID == "" {
		return fmt.Errorf("watchlist user id is required")
	}
	seen := make(map[string]struct{}, len(w.GameIDs))
	for _, id := range w.GameIDs {
		if id == "" {
			return fmt.Errorf("watchlist for %s contains an empty game id", w.UserID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("watchlist for %s contains duplicate game %s", w.UserID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (w Watchlist) Contains(gameID string) bool {
	return slices.Contains(w.GameIDs, gameID)
}

// Add appends gameID unless already present. It reports whether the list changed.
func (w *Watchlist) Add(gameID string) bool {
	if w.Contains(gameID) {
		return false
	}
	w.GameIDs = append(w.GameIDs, gameID)
	return true
}

// Remove drops gameID. It reports whether the list changed.
func (w *Watchlist) Remove(gameID string) bool {
	idx := slices.Index(w.GameIDs, gameID)
	if idx < 0 {
		return false
	}
	w.GameIDs = slices.Delete(w.GameIDs, idx, idx+1)
	return true
}
