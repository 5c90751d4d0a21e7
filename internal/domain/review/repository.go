package review

import "context"

type Repository interface {
	ListReviews(ctx context.Context) ([]Review, error)
	ListPopularTags(ctx context.Context) ([]TagCount, error)
	Create(ctx context.Context, item Review) error
}
