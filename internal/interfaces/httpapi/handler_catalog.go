package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	items := h.catalog.ListSports(ctx)
	out := make([]sportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sportToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.catalog.ListLeagues(ctx, r.URL.Query().Get("sport"))
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguesToDTO(items))
}

func (h *Handler) ListUpcomingGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingGames")
	defer span.End()

	filter, err := gameFilterFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.GetUpcomingGames(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(items))
}

func (h *Handler) ListFinishedGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFinishedGames")
	defer span.End()

	filter, err := gameFilterFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.GetFinishedGames(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list finished games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(items))
}

func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchGames")
	defer span.End()

	query := r.URL.Query().Get("q")
	items, err := h.catalog.SearchGames(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "search games failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(items))
}

func (h *Handler) ListGameReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameReviews")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	items, err := h.catalog.ListReviewsByGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "list game reviews failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reviewsToDTO(items))
}

func (h *Handler) CreateGameReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGameReview")
	defer span.End()

	userID, err := h.currentUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createReviewRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	item, err := h.catalog.CreateReview(ctx, usecase.CreateReviewInput{
		UserID:  userID,
		GameID:  gameID,
		Rating:  *req.Rating,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create review failed", "game_id", gameID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reviewToDTO(item))
}

func (h *Handler) ListRecentReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentReviews")
	defer span.End()

	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.GetRecentReviews(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list recent reviews failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reviewsToDTO(items))
}

func (h *Handler) ListPopularTags(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPopularTags")
	defer span.End()

	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.GetPopularTags(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list popular tags failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tagCountDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tagCountDTO{Tag: item.Tag, Count: item.Count})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func gameFilterFromRequest(r *http.Request) (game.Filter, error) {
	query := r.URL.Query()
	filter := game.Filter{LeagueID: strings.TrimSpace(query.Get("league"))}
	if raw := strings.TrimSpace(query.Get("sport")); raw != "" {
		key, ok := sport.ParseKey(raw)
		if !ok {
			return game.Filter{}, fmt.Errorf("%w: unsupported sport %q", usecase.ErrInvalidInput, raw)
		}
		filter.SportID = key
	}
	return filter, nil
}
