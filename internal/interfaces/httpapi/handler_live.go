package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/riskibarqy/gamelog/internal/domain/sport"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

// Live endpoints never fail on provider trouble: the payload carries a notice instead.

func (h *Handler) ListLiveGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveGames")
	defer span.End()

	key, err := sportFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.sportsData.FetchGames(ctx, key, r.URL.Query())
	writeSuccess(ctx, w, http.StatusOK, liveGamesToDTO(result))
}

func (h *Handler) ListLiveGameWindows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveGameWindows")
	defer span.End()

	key, err := sportFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	windows := h.sportsData.FetchGameWindows(ctx, key, r.URL.Query())
	writeSuccess(ctx, w, http.StatusOK, gameWindowsDTO{
		Upcoming: liveGamesToDTO(windows.Upcoming),
		Finished: liveGamesToDTO(windows.Finished),
	})
}

func (h *Handler) ListLiveLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveLeagues")
	defer span.End()

	key, err := sportFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.sportsData.FetchLeagues(ctx, key, countryFromQuery(r.URL.Query()))
	writeSuccess(ctx, w, http.StatusOK, liveLeaguesToDTO(result))
}

func (h *Handler) ListAllLiveLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllLiveLeagues")
	defer span.End()

	all := h.sportsData.FetchAllLeagues(ctx, countryFromQuery(r.URL.Query()))
	writeSuccess(ctx, w, http.StatusOK, allLeaguesDTO{
		Football:   liveLeaguesToDTO(all.Football),
		Basketball: liveLeaguesToDTO(all.Basketball),
	})
}

func sportFromPath(r *http.Request) (sport.Key, error) {
	raw := r.PathValue("sport")
	key, ok := sport.ParseKey(raw)
	if !ok {
		return "", fmt.Errorf("%w: unsupported sport %q", usecase.ErrInvalidInput, raw)
	}
	return key, nil
}

func countryFromQuery(query url.Values) string {
	return strings.TrimSpace(query.Get("country"))
}
