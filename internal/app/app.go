package app

import (
	"fmt"
	"net/http"

	"github.com/bryanfernandez-eng/nba-glass/internal/config"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/infrastructure/dataset"
	"github.com/bryanfernandez-eng/nba-glass/internal/infrastructure/repository/memory"
	"github.com/bryanfernandez-eng/nba-glass/internal/interfaces/httpapi"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/cache"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
)

// Engine bundles the services built over one loaded dataset.
type Engine struct {
	Rows       int
	Players    *usecase.PlayerService
	Seasons    *usecase.SeasonService
	Teams      *usecase.TeamService
	Rankings   *usecase.RankingService
	Comparison *usecase.ComparisonService
	Leaders    *usecase.LeaderService
}

// LoadEngine reads the dataset at cfg.DatasetPath. With DatasetStrict off a
// load failure is logged and the engine serves an empty table.
func LoadEngine(cfg config.Config, logger *logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.Default()
	}

	rows, err := dataset.LoadFile(cfg.DatasetPath)
	if err != nil {
		if cfg.DatasetStrict {
			return nil, fmt.Errorf("load dataset: %w", err)
		}
		logger.Error("dataset load failed, serving empty table",
			"path", cfg.DatasetPath,
			"error", err,
		)
		rows = nil
	} else {
		logger.Info("dataset loaded", "path", cfg.DatasetPath, "rows", len(rows))
	}

	return NewEngine(rows, cfg.NameCacheMaxEntries, logger), nil
}

func NewEngine(rows []season.Row, nameCacheMaxEntries int, logger *logging.Logger) *Engine {
	repo := memory.NewSeasonRepository(rows)
	resolver := usecase.NewNameResolver(repo, cache.NewMemo[string, string](nameCacheMaxEntries))
	players := usecase.NewPlayerService(repo, resolver, logger)

	return &Engine{
		Rows:       len(rows),
		Players:    players,
		Seasons:    usecase.NewSeasonService(repo),
		Teams:      usecase.NewTeamService(repo),
		Rankings:   usecase.NewRankingService(repo),
		Comparison: usecase.NewComparisonService(players),
		Leaders:    usecase.NewLeaderService(repo),
	}
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	engine, err := LoadEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		engine.Players,
		engine.Seasons,
		engine.Teams,
		engine.Rankings,
		engine.Comparison,
		engine.Leaders,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, httpapi.RateLimitConfig{
		Enabled:  cfg.RateLimitEnabled,
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
