package watchlist

import "context"

// MutateFunc edits a watchlist in place and reports whether it changed.
type MutateFunc func(item *Watchlist) (bool, error)

type Repository interface {
	GetByUser(ctx context.Context, userID string) (Watchlist, bool, error)
	// Update runs fn against the user's current watchlist (empty when none exists) with no other update
	// interleaved, and stores the result when fn reports a change.
	Update(ctx context.Context, userID string, fn MutateFunc) (Watchlist, error)
}
