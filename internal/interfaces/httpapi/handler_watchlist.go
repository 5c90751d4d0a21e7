package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWatchlist")
	defer span.End()

	userID, err := h.currentUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.watchlist.Get(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get watchlist failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, watchlistToDTO(view))
}

func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddToWatchlist")
	defer span.End()

	userID, err := h.currentUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addWatchlistRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.watchlist.Add(ctx, userID, strings.TrimSpace(req.GameID))
	if err != nil {
		h.logger.WarnContext(ctx, "add to watchlist failed", "user_id", userID, "game_id", req.GameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, watchlistToDTO(view))
}

func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFromWatchlist")
	defer span.End()

	userID, err := h.currentUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	view, err := h.watchlist.Remove(ctx, userID, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove from watchlist failed", "user_id", userID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, watchlistToDTO(view))
}
