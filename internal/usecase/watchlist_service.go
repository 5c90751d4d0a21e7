package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/watchlist"
	idgen "github.com/riskibarqy/gamelog/internal/platform/id"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
)

// WatchlistView is a watchlist with its games resolved, in the order they were added.
type WatchlistView struct {
	Watchlist watchlist.Watchlist
	Games     []game.Game
}

type WatchlistService struct {
	watchlistRepo watchlist.Repository
	gameRepo      game.Repository
	idGen         idgen.Generator
	logger        *logging.Logger
	now           func() time.Time
}

func NewWatchlistService(
	watchlistRepo watchlist.Repository,
	gameRepo game.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *WatchlistService {
	if logger == nil {
		logger = logging.Default()
	}

	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		gameRepo:      gameRepo,
		idGen:         idGen,
		logger:        logger,
		now:           time.Now,
	}
}

// Get returns the user's watchlist. A user without one gets an empty list.
func (s *WatchlistService) Get(ctx context.Context, userID string) (WatchlistView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.Get")
	defer span.End()

	item, err := s.load(ctx, userID)
	if err != nil {
		return WatchlistView{}, err
	}
	return s.resolve(ctx, item)
}

func (s *WatchlistService) Add(ctx context.Context, userID, gameID string) (WatchlistView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.Add")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return WatchlistView{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	_, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return WatchlistView{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return WatchlistView{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	item, changed, err := s.update(ctx, userID, func(item *watchlist.Watchlist) bool {
		return item.Add(gameID)
	})
	if err != nil {
		return WatchlistView{}, err
	}
	if changed {
		s.logger.InfoContext(ctx, "watchlist game added", "user_id", item.UserID, "game_id", gameID)
	}

	return s.resolve(ctx, item)
}

// Remove drops a game from the watchlist. Removing a game that is not listed is not an error.
func (s *WatchlistService) Remove(ctx context.Context, userID, gameID string) (WatchlistView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.Remove")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return WatchlistView{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, changed, err := s.update(ctx, userID, func(item *watchlist.Watchlist) bool {
		return item.Remove(gameID)
	})
	if err != nil {
		return WatchlistView{}, err
	}
	if changed {
		s.logger.InfoContext(ctx, "watchlist game removed", "user_id", item.UserID, "game_id", gameID)
	}

	return s.resolve(ctx, item)
}

func (s *WatchlistService) load(ctx context.Context, userID string) (watchlist.Watchlist, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return watchlist.Watchlist{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.watchlistRepo.GetByUser(ctx, userID)
	if err != nil {
		return watchlist.Watchlist{}, fmt.Errorf("get watchlist: %w", err)
	}
	if !exists {
		return watchlist.Watchlist{UserID: userID, GameIDs: []string{}}, nil
	}
	return item, nil
}

// update applies mutate through the repository's atomic update. Ids and timestamps are stamped only
// when the list changed.
func (s *WatchlistService) update(ctx context.Context, userID string, mutate func(item *watchlist.Watchlist) bool) (watchlist.Watchlist, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return watchlist.Watchlist{}, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	var changed bool
	item, err := s.watchlistRepo.Update(ctx, userID, func(item *watchlist.Watchlist) (bool, error) {
		changed = mutate(item)
		if !changed {
			return false, nil
		}
		if err := s.stamp(item); err != nil {
			changed = false
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return watchlist.Watchlist{}, false, fmt.Errorf("update watchlist: %w", err)
	}
	return item, changed, nil
}

func (s *WatchlistService) stamp(item *watchlist.Watchlist) error {
	now := s.now().UTC()
	if item.ID == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate watchlist id: %w", err)
		}
		item.ID = id
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// resolve skips ids whose game no longer exists.
func (s *WatchlistService) resolve(ctx context.Context, item watchlist.Watchlist) (WatchlistView, error) {
	games := make([]game.Game, 0, len(item.GameIDs))
	for _, gameID := range item.GameIDs {
		resolved, exists, err := s.gameRepo.GetByID(ctx, gameID)
		if err != nil {
			return WatchlistView{}, fmt.Errorf("get game: %w", err)
		}
		if !exists {
			s.logger.WarnContext(ctx, "watchlist references unknown game", "user_id", item.UserID, "game_id", gameID)
			continue
		}
		games = append(games, resolved)
	}
	return WatchlistView{Watchlist: item, Games: games}, nil
}
