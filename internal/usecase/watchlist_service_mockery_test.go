package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/watchlist"
	gamemock "github.com/riskibarqy/gamelog/internal/mocks/domain/game"
	watchlistmock "github.com/riskibarqy/gamelog/internal/mocks/domain/watchlist"
	"github.com/stretchr/testify/mock"
)

// applyTo returns an Update stub that runs the mutation against start, like a store would.
func applyTo(start watchlist.Watchlist, stored *bool) func(context.Context, string, watchlist.MutateFunc) (watchlist.Watchlist, error) {
	return func(_ context.Context, _ string, fn watchlist.MutateFunc) (watchlist.Watchlist, error) {
		working := start
		working.GameIDs = append([]string(nil), start.GameIDs...)
		changed, err := fn(&working)
		if err != nil {
			return watchlist.Watchlist{}, err
		}
		if !changed {
			return start, nil
		}
		*stored = true
		return working, nil
	}
}

func TestWatchlistService_AddCreatesWatchlistUsingMockery(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	lists := watchlistmock.NewRepository(t)
	games := gamemock.NewRepository(t)
	svc := NewWatchlistService(lists, games, fixedIDGenerator{id: "wl-1"}, nil)
	svc.now = func() time.Time { return now }

	target := catalogGame("4", sport.Football, "Chelsea", "Arsenal", "PL", "Stamford Bridge", now.Add(72*time.Hour), game.StatusUpcoming)
	games.On("GetByID", mock.Anything, "4").Return(target, true, nil).Twice()

	var stored bool
	lists.On("Update", mock.Anything, "2", mock.Anything).
		Return(applyTo(watchlist.Watchlist{UserID: "2", GameIDs: []string{}}, &stored)).
		Once()

	view, err := svc.Add(context.Background(), "2", " 4 ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !stored {
		t.Fatalf("expected the new watchlist to be stored")
	}
	got := view.Watchlist
	if got.ID != "wl-1" || !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) || len(got.GameIDs) != 1 || got.GameIDs[0] != "4" {
		t.Fatalf("unexpected watchlist: %+v", got)
	}
	if len(view.Games) != 1 || view.Games[0].Venue != "Stamford Bridge" {
		t.Fatalf("unexpected games: %+v", view.Games)
	}
}

func TestWatchlistService_RemoveUnlistedLeavesStoreUntouchedUsingMockery(t *testing.T) {
	t.Parallel()

	lists := watchlistmock.NewRepository(t)
	games := gamemock.NewRepository(t)
	svc := NewWatchlistService(lists, games, fixedIDGenerator{id: "unused"}, nil)

	var stored bool
	lists.On("Update", mock.Anything, "1", mock.Anything).
		Return(applyTo(watchlist.Watchlist{ID: "wl-1", UserID: "1", GameIDs: []string{"5", "gone"}}, &stored)).
		Once()
	games.On("GetByID", mock.Anything, "5").Return(game.Game{ID: "5"}, true, nil).Once()
	games.On("GetByID", mock.Anything, "gone").Return(game.Game{}, false, nil).Once()

	view, err := svc.Remove(context.Background(), "1", "4")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if stored {
		t.Fatalf("removing an unlisted game must not store a change")
	}
	if len(view.Games) != 1 || view.Games[0].ID != "5" {
		t.Fatalf("expected only resolvable games, got=%+v", view.Games)
	}
}

func TestWatchlistService_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	lists := watchlistmock.NewRepository(t)
	games := gamemock.NewRepository(t)
	svc := NewWatchlistService(lists, games, fixedIDGenerator{id: "wl-1"}, nil)

	boom := errors.New("store offline")
	games.On("GetByID", mock.Anything, "4").Return(game.Game{ID: "4"}, true, nil).Once()
	lists.On("Update", mock.Anything, "1", mock.Anything).Return(watchlist.Watchlist{}, boom).Once()

	if _, err := svc.Add(context.Background(), "1", "4"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error to be wrapped, got=%v", err)
	}
}
