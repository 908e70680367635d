package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

const DefaultMinGames = 20

type RankingQuery struct {
	Stat     string
	SeasonID string
	MinGames int
	// Limit caps the number of entries; zero keeps all of them.
	Limit int
}

type RankingEntry struct {
	Rank        int
	PlayerName  string
	Teams       string
	Value       float64
	GamesPlayed int
}

type Ranking struct {
	Stat     season.Stat
	Kind     season.Kind
	SeasonID string
	MinGames int
	Entries  []RankingEntry
}

type RankingService struct {
	repo season.Repository
}

func NewRankingService(repo season.Repository) *RankingService {
	return &RankingService{repo: repo}
}

// Rank orders players by a stat. Counting stats rank by sum(stat)/sum(GP);
// percentage stats rank by the mean of the row values. Ties keep the order
// in which players first appear.
func (s *RankingService) Rank(ctx context.Context, q RankingQuery) (ranking Ranking, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Rank")
	defer span.End()
	defer recoverProcessing("rank players", &err)

	stat, ok := season.ParseStat(q.Stat)
	if !ok {
		return Ranking{}, notFoundWithHint(resourceStatistic, q.Stat, HintValidStats, season.StatNames(), 0)
	}
	if q.MinGames < 0 {
		return Ranking{}, fmt.Errorf("%w: min games must be >= 0", ErrInvalidInput)
	}
	if q.Limit < 0 {
		return Ranking{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	seasonID := strings.TrimSpace(q.SeasonID)
	var rows []season.Row
	if seasonID != "" {
		rows, err = s.repo.ListBySeason(ctx, seasonID)
		if err != nil {
			return Ranking{}, processingError("list rows by season", err)
		}
		if len(rows) == 0 {
			seasons, err := s.repo.Seasons(ctx)
			if err != nil {
				return Ranking{}, processingError("list seasons", err)
			}
			return Ranking{}, notFoundWithHint(resourceSeason, seasonID, HintAvailableSeasons, seasons, maxSeasonHints)
		}
	} else {
		rows, err = s.repo.List(ctx)
		if err != nil {
			return Ranking{}, processingError("list rows", err)
		}
	}

	qualified := make([]season.Row, 0, len(rows))
	for _, row := range rows {
		if row.GP >= q.MinGames {
			qualified = append(qualified, row)
		}
	}
	if len(qualified) == 0 {
		return Ranking{}, notFound(resourcePlayers, fmt.Sprintf("with min %d games", q.MinGames))
	}

	entries := rankEntries(stat, qualified)
	if q.Limit > 0 && len(entries) > q.Limit {
		entries = entries[:q.Limit]
	}

	return Ranking{
		Stat:     stat,
		Kind:     stat.Kind(),
		SeasonID: seasonID,
		MinGames: q.MinGames,
		Entries:  entries,
	}, nil
}

type rankingAcc struct {
	name      string
	teams     []string
	teamSeen  map[string]struct{}
	statSum   float64
	gamesSum  int
	rowsCount int
}

func rankEntries(stat season.Stat, rows []season.Row) []RankingEntry {
	byPlayer := make(map[string]*rankingAcc)
	order := make([]*rankingAcc, 0)
	for _, row := range rows {
		acc, ok := byPlayer[row.PlayerName]
		if !ok {
			acc = &rankingAcc{name: row.PlayerName, teamSeen: make(map[string]struct{})}
			byPlayer[row.PlayerName] = acc
			order = append(order, acc)
		}
		if _, seen := acc.teamSeen[row.TeamAbbreviation]; !seen {
			acc.teamSeen[row.TeamAbbreviation] = struct{}{}
			acc.teams = append(acc.teams, row.TeamAbbreviation)
		}
		acc.statSum += stat.Value(row)
		acc.gamesSum += row.GP
		acc.rowsCount++
	}

	entries := make([]RankingEntry, 0, len(order))
	for _, acc := range order {
		var value float64
		switch stat.Kind() {
		case season.KindPercentage:
			value = metric.Round(acc.statSum/float64(acc.rowsCount), 2)
		default:
			value = metric.PerGame(acc.statSum, float64(acc.gamesSum))
		}
		entries = append(entries, RankingEntry{
			PlayerName:  acc.name,
			Teams:       strings.Join(acc.teams, ", "),
			Value:       value,
			GamesPlayed: acc.gamesSum,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
