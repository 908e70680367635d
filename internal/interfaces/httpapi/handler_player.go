package httpapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	req := listPlayersRequest{Order: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("order")))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	names, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logFailure(ctx, "list players failed", err)
		writeError(ctx, w, err)
		return
	}

	slices.Sort(names)
	if req.Order == "desc" {
		slices.Reverse(names)
	}
	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	req := searchPlayersRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	names, err := h.playerService.Search(ctx, req.Query)
	if err != nil {
		h.logFailure(ctx, "search players failed", err, "query", req.Query)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) ListAllPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllPlayerStats")
	defer span.End()

	rows, err := h.seasonService.ListAllRows(ctx)
	if err != nil {
		h.logFailure(ctx, "list all player stats failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonRowsToDTO(rows))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	name := r.PathValue("playerName")
	rows, err := h.playerService.GetPlayerStats(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get player stats failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonRowsToDTO(rows))
}

func (h *Handler) GetCareerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCareerStats")
	defer span.End()

	name := r.PathValue("playerName")
	summary, err := h.playerService.GetCareerStats(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get career stats failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, careerToDTO(summary))
}

func (h *Handler) ListPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasons")
	defer span.End()

	name := r.PathValue("playerName")
	seasons, err := h.playerService.ListSeasons(ctx, name)
	if err != nil {
		h.logFailure(ctx, "list player seasons failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) GetStatTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatTrend")
	defer span.End()

	req := trendRequest{PlayerName: r.PathValue("playerName"), Stat: r.PathValue("stat")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	trend, err := h.playerService.GetStatTrend(ctx, req.PlayerName, req.Stat)
	if err != nil {
		h.logFailure(ctx, "get stat trend failed", err, "player", req.PlayerName, "stat", req.Stat)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, trendToDTO(trend))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	query := r.URL.Query()
	req := compareRequest{
		Player1: strings.TrimSpace(query.Get("player1")),
		Player2: strings.TrimSpace(query.Get("player2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.comparisonService.Compare(ctx, req.Player1, req.Player2)
	if err != nil {
		h.logFailure(ctx, "compare players failed", err, "player1", req.Player1, "player2", req.Player2)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(comparison))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.ListSeasons(ctx)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err)
		writeError(ctx, w, err)
		return
	}
	slices.Sort(seasons)
	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStats")
	defer span.End()

	year, err := pathInt(r, "year")
	if err == nil {
		err = h.validateRequest(ctx, seasonYearRequest{Year: year})
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.seasonService.ListRowsForYear(ctx, year)
	if err != nil {
		h.logFailure(ctx, "get season stats failed", err, "year", year, "season_id", season.Label(year))
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonRowsToDTO(rows))
}
