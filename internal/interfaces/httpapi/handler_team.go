package httpapi

import (
	"net/http"
	"slices"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}
	slices.Sort(teams)
	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	team := r.PathValue("team")
	stats, err := h.teamService.GetTeamStats(ctx, team)
	if err != nil {
		h.logFailure(ctx, "get team stats failed", err, "team", team)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamStatsToDTO(stats))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	team := r.PathValue("team")
	names, err := h.teamService.ListTeamPlayers(ctx, team)
	if err != nil {
		h.logFailure(ctx, "list team players failed", err, "team", team)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) GetTeamSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeasonStats")
	defer span.End()

	team := r.PathValue("team")
	seasonID := r.PathValue("seasonID")
	stats, err := h.teamService.GetTeamSeasonStats(ctx, team, seasonID)
	if err != nil {
		h.logFailure(ctx, "get team season stats failed", err, "team", team, "season_id", seasonID)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamSeasonToDTO(stats))
}
