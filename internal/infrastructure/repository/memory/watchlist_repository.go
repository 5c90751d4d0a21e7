package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/gamelog/internal/domain/watchlist"
)

type WatchlistRepository struct {
	mu     sync.RWMutex
	byUser map[string]watchlist.Watchlist
}

func NewWatchlistRepository(items []watchlist.Watchlist) *WatchlistRepository {
	byUser := make(map[string]watchlist.Watchlist, len(items))
	for _, item := range items {
		byUser[item.UserID] = cloneWatchlist(item)
	}

	return &WatchlistRepository{byUser: byUser}
}

func (r *WatchlistRepository) GetByUser(_ context.Context, userID string) (watchlist.Watchlist, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byUser[userID]
	if !ok {
		return watchlist.Watchlist{}, false, nil
	}

	return cloneWatchlist(item), true, nil
}

func (r *WatchlistRepository) Update(_ context.Context, userID string, fn watchlist.MutateFunc) (watchlist.Watchlist, error) {
	if strings.TrimSpace(userID) == "" {
		return watchlist.Watchlist{}, fmt.Errorf("watchlist user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byUser[userID]
	if !ok {
		current = watchlist.Watchlist{UserID: userID, GameIDs: []string{}}
	}
	working := cloneWatchlist(current)

	changed, err := fn(&working)
	if err != nil {
		return watchlist.Watchlist{}, err
	}
	if !changed {
		return cloneWatchlist(current), nil
	}
	if working.UserID != userID {
		return watchlist.Watchlist{}, fmt.Errorf("watchlist for %s cannot be moved to user %s", userID, working.UserID)
	}

	r.byUser[userID] = cloneWatchlist(working)
	return working, nil
}

func cloneWatchlist(item watchlist.Watchlist) watchlist.Watchlist {
	item.GameIDs = append([]string(nil), item.GameIDs...)
	return item
}
