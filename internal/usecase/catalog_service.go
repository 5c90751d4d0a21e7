package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/league"
	"github.com/riskibarqy/gamelog/internal/domain/review"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/domain/user"
	idgen "github.com/riskibarqy/gamelog/internal/platform/id"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
)

// CreateReviewInput is the incoming payload for a new review.
type CreateReviewInput struct {
	UserID  string
	GameID  string
	Rating  float64
	Content string
	Tags    []string
}

type CatalogService struct {
	gameRepo   game.Repository
	reviewRepo review.Repository
	leagueRepo league.Repository
	userRepo   user.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewCatalogService(
	gameRepo game.Repository,
	reviewRepo review.Repository,
	leagueRepo league.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CatalogService{
		gameRepo:   gameRepo,
		reviewRepo: reviewRepo,
		leagueRepo: leagueRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// GetRecentReviews returns reviews newest first. A non-positive limit returns all of them.
func (s *CatalogService) GetRecentReviews(ctx context.Context, limit int) ([]review.Review, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetRecentReviews")
	defer span.End()

	items, err := s.reviewRepo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	sortReviewsByRecency(items)
	return limitSlice(items, limit), nil
}

func (s *CatalogService) GetUpcomingGames(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetUpcomingGames")
	defer span.End()

	filter.Status = game.StatusUpcoming
	items, err := s.gameRepo.ListGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list upcoming games: %w", err)
	}

	sortGamesByDate(items, true)
	return items, nil
}

func (s *CatalogService) GetFinishedGames(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetFinishedGames")
	defer span.End()

	filter.Status = game.StatusFinished
	items, err := s.gameRepo.ListGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list finished games: %w", err)
	}

	sortGamesByDate(items, false)
	return items, nil
}

// GetPopularTags orders tags by usage, then alphabetically. A non-positive limit returns every tag.
func (s *CatalogService) GetPopularTags(ctx context.Context, limit int) ([]review.TagCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetPopularTags")
	defer span.End()

	items, err := s.reviewRepo.ListPopularTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list popular tags: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Tag < items[j].Tag
	})
	return limitSlice(items, limit), nil
}

func (s *CatalogService) ListSports(context.Context) []sport.Sport {
	return sport.All()
}

// ListLeagues returns catalog leagues, optionally narrowed to one sport.
func (s *CatalogService) ListLeagues(ctx context.Context, sportName string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	var key sport.Key
	if strings.TrimSpace(sportName) != "" {
		parsed, ok := sport.ParseKey(sportName)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported sport %q", ErrInvalidInput, sportName)
		}
		key = parsed
	}

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	if key == "" {
		return items, nil
	}

	out := make([]league.League, 0, len(items))
	for _, item := range items {
		if item.Sport.ID == key {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *CatalogService) ListReviewsByGame(ctx context.Context, gameID string) ([]review.Review, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListReviewsByGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	if _, err := s.requireGame(ctx, gameID); err != nil {
		return nil, err
	}

	items, err := s.reviewRepo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]review.Review, 0, len(items))
	for _, item := range items {
		if item.Game.ID == gameID {
			out = append(out, item)
		}
	}
	sortReviewsByRecency(out)
	return out, nil
}

func (s *CatalogService) CreateReview(ctx context.Context, input CreateReviewInput) (review.Review, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateReview")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.GameID = strings.TrimSpace(input.GameID)
	input.Content = strings.TrimSpace(input.Content)
	if input.UserID == "" || input.GameID == "" {
		return review.Review{}, fmt.Errorf("%w: user id and game id are required", ErrInvalidInput)
	}

	author, exists, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return review.Review{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return review.Review{}, fmt.Errorf("%w: user=%s", ErrNotFound, input.UserID)
	}

	target, err := s.requireGame(ctx, input.GameID)
	if err != nil {
		return review.Review{}, err
	}

	reviewID, err := s.idGen.NewID()
	if err != nil {
		return review.Review{}, fmt.Errorf("generate review id: %w", err)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	now := s.now().UTC()
	item := review.Review{
		ID:        reviewID,
		User:      author,
		Game:      target,
		Rating:    input.Rating,
		Content:   input.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return review.Review{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.reviewRepo.Create(ctx, item); err != nil {
		return review.Review{}, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created", "review_id", item.ID, "game_id", target.ID, "user_id", author.ID)
	return item, nil
}

// SearchGames matches every term of query against team, league and venue names.
// Double-quoted phrases count as one term.
func (s *CatalogService) SearchGames(ctx context.Context, query string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.SearchGames")
	defer span.End()

	terms, err := searchTerms(query)
	if err != nil {
		return nil, err
	}

	items, err := s.gameRepo.ListGames(ctx, game.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	type scored struct {
		item game.Game
		rank int
	}
	matches := make([]scored, 0, len(items))
	for _, item := range items {
		fields := []string{item.HomeTeam.Name, item.AwayTeam.Name, item.League.Name, item.Venue, item.Sport.Name}
		total := 0
		matched := true
		for _, term := range terms {
			best := bestFuzzyRank(term, fields)
			if best < 0 {
				matched = false
				break
			}
			total += best
		}
		if matched {
			matches = append(matches, scored{item: item, rank: total})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].item.Date.Before(matches[j].item.Date)
	})

	out := make([]game.Game, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.item)
	}
	return out, nil
}

func (s *CatalogService) requireGame(ctx context.Context, gameID string) (game.Game, error) {
	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	return item, nil
}

func searchTerms(query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("build query splitter: %w", err)
	}
	parts, err := spaceSplitter.Split(query)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed search query: %v", ErrInvalidInput, err)
	}

	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"“”`))
		if part != "" {
			terms = append(terms, part)
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	return terms, nil
}

// bestFuzzyRank returns the lowest match distance of term across fields, or -1 when nothing matches.
func bestFuzzyRank(term string, fields []string) int {
	best := -1
	for _, field := range fields {
		if field == "" {
			continue
		}
		rank := fuzzy.RankMatchNormalizedFold(term, field)
		if rank < 0 {
			continue
		}
		if best < 0 || rank < best {
			best = rank
		}
	}
	return best
}

func sortReviewsByRecency(items []review.Review) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

func limitSlice[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
