package httpapi

import (
	"net/http"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	minGames, err := queryInt(r, "min_games", usecase.DefaultMinGames)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := rankingRequest{
		Stat:     r.PathValue("stat"),
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
		MinGames: minGames,
		Limit:    limit,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	ranking, err := h.rankingService.Rank(ctx, usecase.RankingQuery{
		Stat:     req.Stat,
		SeasonID: req.SeasonID,
		MinGames: req.MinGames,
		Limit:    req.Limit,
	})
	if err != nil {
		h.logFailure(ctx, "rank players failed", err, "stat", req.Stat, "season_id", req.SeasonID)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, rankingToDTO(ranking))
}

func (h *Handler) ListEfficiencyLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEfficiencyLeaders")
	defer span.End()

	minPPG, err := queryFloat(r, "min_ppg", usecase.DefaultMinPPG)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	minGames, err := queryInt(r, "min_games", usecase.DefaultMinGames)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := efficiencyRequest{
		MinPPG:   minPPG,
		MinGames: minGames,
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leaders, err := h.leaderService.EfficiencyLeaders(ctx, usecase.EfficiencyQuery{
		MinPPG:   req.MinPPG,
		MinGames: req.MinGames,
		SeasonID: req.SeasonID,
	})
	if err != nil {
		h.logFailure(ctx, "efficiency leaders failed", err, "season_id", req.SeasonID)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, efficiencyLeadersToDTO(leaders))
}

func (h *Handler) ListMostImproved(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMostImproved")
	defer span.End()

	year1, err := queryInt(r, "year1", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year2, err := queryInt(r, "year2", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	minGames, err := queryInt(r, "min_games", usecase.DefaultMinGames)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := mostImprovedRequest{
		Stat:     r.PathValue("stat"),
		Year1:    year1,
		Year2:    year2,
		MinGames: minGames,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.leaderService.MostImproved(ctx, usecase.MostImprovedQuery{
		Stat:     req.Stat,
		Year1:    req.Year1,
		Year2:    req.Year2,
		MinGames: req.MinGames,
	})
	if err != nil {
		h.logFailure(ctx, "most improved failed", err, "stat", req.Stat, "year1", req.Year1, "year2", req.Year2)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mostImprovedToDTO(result))
}
