package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/gamelog/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	items  map[string]game.Game
	orders []string
}

func NewGameRepository(games []game.Game) *GameRepository {
	items := make(map[string]game.Game, len(games))
	orders := make([]string, 0, len(games))

	for _, g := range games {
		if _, exists := items[g.ID]; !exists {
			orders = append(orders, g.ID)
		}
		items[g.ID] = g
	}

	return &GameRepository{
		items:  items,
		orders: orders,
	}
}

// ListGames returns matching games in seed order.
func (r *GameRepository) ListGames(_ context.Context, filter game.Filter) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.orders))
	for _, id := range r.orders {
		item := r.items[id]
		if filter.Match(item) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gameID]
	if !ok {
		return game.Game{}, false, nil
	}

	return g, true, nil
}
