package game

import "context"

// Repository exposes game read operations.
type Repository interface {
	ListGames(ctx context.Context, filter Filter) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
}
