package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/gamelog/internal/domain/review"
)

type ReviewRepository struct {
	mu     sync.RWMutex
	items  map[string]review.Review
	orders []string
}

func NewReviewRepository(reviews []review.Review) *ReviewRepository {
	items := make(map[string]review.Review, len(reviews))
	orders := make([]string, 0, len(reviews))

	for _, item := range reviews {
		if _, exists := items[item.ID]; !exists {
			orders = append(orders, item.ID)
		}
		items[item.ID] = item
	}

	return &ReviewRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ReviewRepository) ListReviews(_ context.Context) ([]review.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]review.Review, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneReview(r.items[id]))
	}

	return out, nil
}

// ListPopularTags counts tag occurrences across all reviews, in first-seen order.
func (r *ReviewRepository) ListPopularTags(_ context.Context) ([]review.TagCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	seen := make([]string, 0)
	for _, id := range r.orders {
		for _, tag := range r.items[id].Tags {
			if _, ok := counts[tag]; !ok {
				seen = append(seen, tag)
			}
			counts[tag]++
		}
	}

	out := make([]review.TagCount, 0, len(seen))
	for _, tag := range seen {
		out = append(out, review.TagCount{Tag: tag, Count: counts[tag]})
	}

	return out, nil
}

func (r *ReviewRepository) Create(_ context.Context, item review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("review %s already exists", item.ID)
	}
	r.items[item.ID] = cloneReview(item)
	r.orders = append(r.orders, item.ID)

	return nil
}

func cloneReview(item review.Review) review.Review {
	item.Tags = append([]string(nil), item.Tags...)
	return item
}
