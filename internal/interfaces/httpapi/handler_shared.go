package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/domain/matchrecord"
	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/platform/logging"
	"github.com/pitchside/matchboard/internal/usecase"
)

type Handler struct {
	teamService    *usecase.TeamService
	datasetService *usecase.DatasetService
	chartService   *usecase.ChartService
	refreshService *usecase.RefreshService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	datasetService *usecase.DatasetService,
	chartService *usecase.ChartService,
	refreshService *usecase.RefreshService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:    teamService,
		datasetService: datasetService,
		chartService:   chartService,
		refreshService: refreshService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createChartRequest struct {
	TeamID string       `json:"teamId" validate:"required"`
	Name   string       `json:"name" validate:"required,max=120"`
	Config chart.Config `json:"config"`
}

type updateChartRequest struct {
	Name   string       `json:"name" validate:"required,max=120"`
	Config chart.Config `json:"config"`
}

type refreshRequest struct {
	TeamIDs    []string `json:"teamIds" validate:"omitempty,dive,required"`
	MaxWorkers int      `json:"maxWorkers" validate:"omitempty,min=1,max=32"`
}

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

type teamRecordsResponse struct {
	Team        teamDTO                    `json:"team"`
	Records     []*matchrecord.MatchRecord `json:"records"`
	Diagnostics usecase.DatasetDiagnostics `json:"diagnostics"`
}

type teamRecordsRawResponse struct {
	Team        teamDTO                    `json:"team"`
	Primary     []*matchrecord.MatchRecord `json:"primary"`
	Secondary   []*matchrecord.MatchRecord `json:"secondary"`
	Diagnostics usecase.DatasetDiagnostics `json:"diagnostics"`
}

type savedChartDTO struct {
	ID        string       `json:"id"`
	TeamID    string       `json:"teamId"`
	Name      string       `json:"name"`
	Config    chart.Config `json:"config"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

type chartDataResponse struct {
	Chart savedChartDTO `json:"chart"`
	Data  *chart.Data   `json:"data"`
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:    v.ID,
		Name:  v.Name,
		Short: v.Short,
	}
}

func savedChartToDTO(ctx context.Context, v chart.SavedChart) savedChartDTO {
	ctx, span := startSpan(ctx, "httpapi.savedChartToDTO")
	defer span.End()

	return savedChartDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		Name:      v.Name,
		Config:    v.Config,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func emptyRecords(records []*matchrecord.MatchRecord) []*matchrecord.MatchRecord {
	if records == nil {
		return []*matchrecord.MatchRecord{}
	}
	return records
}
