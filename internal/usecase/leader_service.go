package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

const DefaultMinPPG = 10.0

type EfficiencyQuery struct {
	MinPPG   float64
	MinGames int
	SeasonID string
}

type EfficiencyLeader struct {
	Rank            int
	PlayerName      string
	Team            string
	GamesPlayed     int
	PPG             float64
	TrueShootingPct float64
}

type MostImprovedQuery struct {
	Stat     string
	Year1    int
	Year2    int
	MinGames int
}

type ImprovedPlayer struct {
	Rank        int
	PlayerName  string
	Year1Team   string
	Year2Team   string
	Year1GP     int
	Year2GP     int
	Year1Value  float64
	Year2Value  float64
	Improvement float64
}

type MostImproved struct {
	Stat     season.Stat
	Season1  string
	Season2  string
	MinGames int
	Players  []ImprovedPlayer
}

type LeaderService struct {
	repo season.Repository
}

func NewLeaderService(repo season.Repository) *LeaderService {
	return &LeaderService{repo: repo}
}

// EfficiencyLeaders ranks single season rows by true shooting. A player's
// first qualifying row is the one that counts.
func (s *LeaderService) EfficiencyLeaders(ctx context.Context, q EfficiencyQuery) (leaders []EfficiencyLeader, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.EfficiencyLeaders")
	defer span.End()
	defer recoverProcessing("efficiency leaders", &err)

	if q.MinPPG < 0 || q.MinGames < 0 {
		return nil, fmt.Errorf("%w: min ppg and min games must be >= 0", ErrInvalidInput)
	}

	seasonID := strings.TrimSpace(q.SeasonID)
	var rows []season.Row
	if seasonID != "" {
		rows, err = s.repo.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, processingError("list rows by season", err)
		}
		if len(rows) == 0 {
			return nil, notFound(resourceSeason, seasonID)
		}
	} else {
		rows, err = s.repo.List(ctx)
		if err != nil {
			return nil, processingError("list rows", err)
		}
	}

	seen := make(map[string]struct{})
	leaders = make([]EfficiencyLeader, 0)
	for _, row := range rows {
		if row.PlayerName == "" || row.GP < q.MinGames {
			continue
		}
		ppg := 0.0
		if row.GP > 0 {
			ppg = float64(row.PTS) / float64(row.GP)
		}
		if ppg < q.MinPPG {
			continue
		}
		if _, ok := seen[row.PlayerName]; ok {
			continue
		}
		seen[row.PlayerName] = struct{}{}
		leaders = append(leaders, EfficiencyLeader{
			PlayerName:      row.PlayerName,
			Team:            row.TeamAbbreviation,
			GamesPlayed:     row.GP,
			PPG:             metric.Round(ppg, 1),
			TrueShootingPct: metric.TrueShootingPct(float64(row.PTS), float64(row.FGA), float64(row.FTA)),
		})
	}

	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].TrueShootingPct > leaders[j].TrueShootingPct
	})
	for i := range leaders {
		leaders[i].Rank = i + 1
	}
	return leaders, nil
}

type perGameLine struct {
	team  string
	games int
	value float64
}

// MostImproved ranks players present in both seasons by the change in a
// per-game stat. When a player has several rows in a season the last wins.
func (s *LeaderService) MostImproved(ctx context.Context, q MostImprovedQuery) (result MostImproved, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.MostImproved")
	defer span.End()
	defer recoverProcessing("most improved", &err)

	stat, ok := season.ParseStat(q.Stat)
	if !ok {
		return MostImproved{}, notFoundWithHint(resourceStatistic, q.Stat, HintValidStats, season.StatNames(), 0)
	}
	if q.MinGames < 0 {
		return MostImproved{}, fmt.Errorf("%w: min games must be >= 0", ErrInvalidInput)
	}

	season1, season2 := season.Label(q.Year1), season.Label(q.Year2)
	first, firstOrder, err := s.perGameBySeason(ctx, stat, season1, q.MinGames)
	if err != nil {
		return MostImproved{}, err
	}
	second, _, err := s.perGameBySeason(ctx, stat, season2, q.MinGames)
	if err != nil {
		return MostImproved{}, err
	}

	players := make([]ImprovedPlayer, 0)
	for _, name := range firstOrder {
		before := first[name]
		after, ok := second[name]
		if !ok {
			continue
		}
		players = append(players, ImprovedPlayer{
			PlayerName:  name,
			Year1Team:   before.team,
			Year2Team:   after.team,
			Year1GP:     before.games,
			Year2GP:     after.games,
			Year1Value:  before.value,
			Year2Value:  after.value,
			Improvement: metric.Round(after.value-before.value, 2),
		})
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Improvement > players[j].Improvement
	})
	for i := range players {
		players[i].Rank = i + 1
	}

	return MostImproved{
		Stat:     stat,
		Season1:  season1,
		Season2:  season2,
		MinGames: q.MinGames,
		Players:  players,
	}, nil
}

func (s *LeaderService) perGameBySeason(ctx context.Context, stat season.Stat, seasonID string, minGames int) (map[string]perGameLine, []string, error) {
	rows, err := s.repo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, nil, processingError("list rows by season", err)
	}
	if len(rows) == 0 {
		return nil, nil, notFound(resourceSeason, seasonID)
	}

	lines := make(map[string]perGameLine)
	order := make([]string, 0)
	for _, row := range rows {
		if row.PlayerName == "" || row.GP < minGames {
			continue
		}
		value := 0.0
		if row.GP > 0 {
			value = metric.Round(stat.Value(row)/float64(row.GP), 2)
		}
		if _, ok := lines[row.PlayerName]; !ok {
			order = append(order, row.PlayerName)
		}
		lines[row.PlayerName] = perGameLine{team: row.TeamAbbreviation, games: row.GP, value: value}
	}
	return lines, order, nil
}
