package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/usecase"
)

func (h *Handler) PreviewChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewChart")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("teamId"))
	if teamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: teamId query parameter is required", usecase.ErrInvalidInput))
		return
	}

	var cfg chart.Config
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	data, err := h.chartService.Preview(ctx, teamID, cfg)
	if err != nil {
		h.logger.WarnContext(ctx, "preview chart failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) CreateChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChart")
	defer span.End()

	var req createChartRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.chartService.CreateChart(ctx, usecase.CreateChartInput{
		TeamID: req.TeamID,
		Name:   req.Name,
		Config: req.Config,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create chart failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, savedChartToDTO(ctx, saved))
}

func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCharts")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("teamId"))
	if teamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: teamId query parameter is required", usecase.ErrInvalidInput))
		return
	}

	charts, err := h.chartService.ListChartsByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list charts failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]savedChartDTO, 0, len(charts))
	for _, saved := range charts {
		items = append(items, savedChartToDTO(ctx, saved))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChart")
	defer span.End()

	chartID := strings.TrimSpace(r.PathValue("chartID"))

	saved, err := h.chartService.GetChart(ctx, chartID)
	if err != nil {
		h.logger.WarnContext(ctx, "get chart failed", "chart_id", chartID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, savedChartToDTO(ctx, saved))
}

func (h *Handler) UpdateChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChart")
	defer span.End()

	chartID := strings.TrimSpace(r.PathValue("chartID"))

	var req updateChartRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.chartService.UpdateChart(ctx, usecase.UpdateChartInput{
		ChartID: chartID,
		Name:    req.Name,
		Config:  req.Config,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update chart failed", "chart_id", chartID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, savedChartToDTO(ctx, saved))
}

func (h *Handler) DeleteChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChart")
	defer span.End()

	chartID := strings.TrimSpace(r.PathValue("chartID"))

	if err := h.chartService.DeleteChart(ctx, chartID); err != nil {
		h.logger.WarnContext(ctx, "delete chart failed", "chart_id", chartID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) GetChartData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChartData")
	defer span.End()

	chartID := strings.TrimSpace(r.PathValue("chartID"))

	rendered, err := h.chartService.RenderSaved(ctx, chartID)
	if err != nil {
		h.logger.WarnContext(ctx, "render chart failed", "chart_id", chartID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, chartDataResponse{
		Chart: savedChartToDTO(ctx, rendered.Chart),
		Data:  rendered.Data,
	})
}
