package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, row := range teams {
		items = append(items, teamToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecords")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	dataset, err := h.datasetService.BuildTeamDataset(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "build team dataset failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRecordsResponse{
		Team:        teamToDTO(ctx, dataset.Team),
		Records:     emptyRecords(dataset.Records),
		Diagnostics: dataset.Diagnostics,
	})
}

func (h *Handler) GetTeamRecordsRaw(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecordsRaw")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	dataset, err := h.datasetService.BuildTeamDataset(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "build team dataset failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRecordsRawResponse{
		Team:        teamToDTO(ctx, dataset.Team),
		Primary:     emptyRecords(dataset.Primary),
		Secondary:   emptyRecords(dataset.Secondary),
		Diagnostics: dataset.Diagnostics,
	})
}
