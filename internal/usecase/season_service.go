package usecase

import (
	"context"
	"strconv"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

type SeasonService struct {
	repo season.Repository
}

func NewSeasonService(repo season.Repository) *SeasonService {
	return &SeasonService{repo: repo}
}

func (s *SeasonService) ListAllRows(ctx context.Context) (rows []season.Row, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListAllRows")
	defer span.End()
	defer recoverProcessing("list all rows", &err)

	rows, err = s.repo.List(ctx)
	if err != nil {
		return nil, processingError("list rows", err)
	}
	return rows, nil
}

// ListRowsForYear returns the rows of the season ending in endYear,
// so 2023 selects "2022-23".
func (s *SeasonService) ListRowsForYear(ctx context.Context, endYear int) (rows []season.Row, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListRowsForYear")
	defer span.End()
	defer recoverProcessing("list rows for year", &err)

	rows, err = s.repo.ListBySeason(ctx, season.Label(endYear))
	if err != nil {
		return nil, processingError("list rows by season", err)
	}
	if len(rows) == 0 {
		return nil, notFound(resourceSeason, strconv.Itoa(endYear))
	}
	return rows, nil
}

func (s *SeasonService) ListSeasons(ctx context.Context) (seasons []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()
	defer recoverProcessing("list seasons", &err)

	seasons, err = s.repo.Seasons(ctx)
	if err != nil {
		return nil, processingError("list seasons", err)
	}
	return seasons, nil
}
