package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pitchside/matchboard/external/gsheets"
	"github.com/pitchside/matchboard/internal/config"
	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/domain/match"
	"github.com/pitchside/matchboard/internal/domain/team"
	cacherepo "github.com/pitchside/matchboard/internal/infrastructure/repository/cache"
	"github.com/pitchside/matchboard/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchboard/internal/infrastructure/repository/postgres"
	"github.com/pitchside/matchboard/internal/interfaces/httpapi"
	basecache "github.com/pitchside/matchboard/internal/platform/cache"
	idgen "github.com/pitchside/matchboard/internal/platform/id"
	"github.com/pitchside/matchboard/internal/platform/logging"
	"github.com/pitchside/matchboard/internal/platform/resilience"
	"github.com/pitchside/matchboard/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup releases the database handle and is safe
// to call when the app runs on in-memory repositories.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		teamRepo  team.Repository
		matchRepo match.Repository
		chartRepo chart.Repository
	)
	cleanup := func() error { return nil }

	if cfg.DBURL != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		chartRepo = postgres.NewChartConfigRepository(db)
		cleanup = db.Close
		logger.Info("storage ready", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))
	} else {
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		chartRepo = memory.NewChartRepository()
		logger.Info("storage ready", "backend", "memory", "reason", "DATABASE_URL empty")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		chartRepo = cacherepo.NewChartConfigRepository(chartRepo, store)
	}

	var sheets usecase.SheetFetcher
	if cfg.SheetsEnabled {
		sheets = gsheets.NewClient(gsheets.ClientConfig{
			BaseURL:       cfg.SheetsBaseURL,
			SpreadsheetID: cfg.SheetsSpreadsheetID,
			APIKey:        cfg.SheetsAPIKey,
			DefaultRange:  cfg.SheetsDefaultRange,
			Timeout:       cfg.SheetsTimeout,
			MaxRetries:    cfg.SheetsMaxRetries,
			Logger:        logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SheetsCircuitEnabled,
				FailureThreshold: cfg.SheetsCircuitFailureCount,
				OpenTimeout:      cfg.SheetsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SheetsCircuitHalfOpenMaxReq,
			},
		})
	} else {
		logger.Info("spreadsheet source disabled", "reason", "SHEETS_ENABLED=false")
	}

	datasetSvc := usecase.NewDatasetService(teamRepo, matchRepo, sheets, logger)
	teamSvc := usecase.NewTeamService(teamRepo)
	chartSvc := usecase.NewChartService(chartRepo, teamRepo, datasetSvc, idgen.NewRandomGenerator())
	refreshSvc := usecase.NewRefreshService(teamRepo, datasetSvc, logger)

	handler := httpapi.NewHandler(teamSvc, datasetSvc, chartSvc, refreshSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalRefreshToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
