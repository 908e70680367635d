package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/resilience"
	"github.com/panjf2000/ants/v2"
)

const defaultExportWorkers = 4

type TrendPoint struct {
	SeasonID string
	Team     string
	Value    float64
}

type StatTrend struct {
	PlayerName string
	Stat       season.Stat
	Points     []TrendPoint
}

type PlayerService struct {
	repo     season.Repository
	resolver *NameResolver
	logger   *logging.Logger
	careers  resilience.Group[careerLookup]
}

// careerLookup is what concurrent career requests for one normalized name
// share. Not-found errors are built per caller so each keeps its own query.
type careerLookup struct {
	resolution Resolution
	summary    CareerSummary
}

func NewPlayerService(repo season.Repository, resolver *NameResolver, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// ListPlayers returns every distinct player name in dataset order.
func (s *PlayerService) ListPlayers(ctx context.Context) (names []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()
	defer recoverProcessing("list players", &err)

	names, err = s.repo.PlayerNames(ctx)
	if err != nil {
		return nil, processingError("list player names", err)
	}
	return names, nil
}

// GetPlayerStats returns the player's season rows with PlayerName cleared.
func (s *PlayerService) GetPlayerStats(ctx context.Context, name string) (rows []season.Row, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStats")
	defer span.End()
	defer recoverProcessing("get player stats", &err)

	rows, err = s.resolver.rowsFor(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PlayerName = ""
	}
	return rows, nil
}

func (s *PlayerService) GetCareerStats(ctx context.Context, name string) (summary CareerSummary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetCareerStats")
	defer span.End()
	defer recoverProcessing("get career stats", &err)

	lookup, err, shared := s.careers.Do(Normalize(name), func() (careerLookup, error) {
		res, err := s.resolver.Resolve(ctx, name)
		if err != nil {
			return careerLookup{}, err
		}
		lookup := careerLookup{resolution: res}
		if res.Matched() {
			lookup.summary = buildCareerSummary(res.Rows)
		}
		return lookup, nil
	})
	if shared {
		s.logger.DebugContext(ctx, "career stats shared with in-flight call", "player", name)
	}
	if errors.Is(err, resilience.ErrCallPanicked) {
		return CareerSummary{}, processingError("get career stats", err)
	}
	if err != nil {
		return CareerSummary{}, err
	}
	if !lookup.resolution.Matched() {
		return CareerSummary{}, lookup.resolution.notFound(name)
	}
	return lookup.summary, nil
}

// ListSeasons returns the player's distinct season ids in dataset order.
func (s *PlayerService) ListSeasons(ctx context.Context, name string) (seasons []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListSeasons")
	defer span.End()
	defer recoverProcessing("list player seasons", &err)

	rows, err := s.resolver.rowsFor(ctx, name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.SeasonID]; ok {
			continue
		}
		seen[row.SeasonID] = struct{}{}
		seasons = append(seasons, row.SeasonID)
	}
	return seasons, nil
}

// GetStatTrend returns one point per season row of the player, in dataset order.
func (s *PlayerService) GetStatTrend(ctx context.Context, name, stat string) (trend StatTrend, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetStatTrend")
	defer span.End()
	defer recoverProcessing("get stat trend", &err)

	parsed, ok := season.ParseStat(stat)
	if !ok {
		return StatTrend{}, notFoundWithHint(resourceStatistic, stat, HintValidStats, season.StatNames(), 0)
	}

	rows, err := s.resolver.rowsFor(ctx, name)
	if err != nil {
		return StatTrend{}, err
	}

	points := make([]TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, TrendPoint{
			SeasonID: row.SeasonID,
			Team:     row.TeamAbbreviation,
			Value:    parsed.Value(row),
		})
	}
	return StatTrend{
		PlayerName: rows[0].PlayerName,
		Stat:       parsed,
		Points:     points,
	}, nil
}

// Search returns every player whose name contains query, ignoring case.
func (s *PlayerService) Search(ctx context.Context, query string) (matches []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()
	defer recoverProcessing("search players", &err)

	names, err := s.repo.PlayerNames(ctx)
	if err != nil {
		return nil, processingError("list player names", err)
	}

	needle := strings.ToLower(query)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return nil, notFound(resourcePlayer, query)
	}
	return matches, nil
}

// ExportCareers computes the career summary of every player on a bounded
// worker pool. Output keeps dataset player order.
func (s *PlayerService) ExportCareers(ctx context.Context, workers int) ([]CareerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ExportCareers")
	defer span.End()

	if workers <= 0 {
		workers = defaultExportWorkers
	}

	names, err := s.repo.PlayerNames(ctx)
	if err != nil {
		return nil, processingError("list player names", err)
	}
	if len(names) == 0 {
		return []CareerSummary{}, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	started := time.Now()
	out := make([]CareerSummary, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i], errs[i] = s.exportOne(ctx, name)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "career export finished",
		"players", len(out),
		"workers", workers,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return out, nil
}

func (s *PlayerService) exportOne(ctx context.Context, name string) (summary CareerSummary, err error) {
	defer recoverProcessing("export career "+name, &err)

	if err := ctx.Err(); err != nil {
		return CareerSummary{}, err
	}
	rows, err := s.repo.ListByPlayerName(ctx, name)
	if err != nil {
		return CareerSummary{}, processingError("list player rows", err)
	}
	return buildCareerSummary(rows), nil
}
