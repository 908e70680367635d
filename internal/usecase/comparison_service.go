package usecase

import (
	"context"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/sourcegraph/conc"
)

type StatComparison struct {
	Key        string
	Player1    float64
	Player2    float64
	Difference float64
}

type Comparison struct {
	Player1  string
	Player2  string
	Totals   []StatComparison
	Averages []StatComparison
	Advanced []StatComparison
}

type ComparisonService struct {
	players *PlayerService
}

func NewComparisonService(players *PlayerService) *ComparisonService {
	return &ComparisonService{players: players}
}

// Compare lines up two career summaries key by key. Both careers are built
// concurrently; when both names fail, the first player's error wins.
func (s *ComparisonService) Compare(ctx context.Context, name1, name2 string) (cmp Comparison, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()
	defer recoverProcessing("compare players", &err)

	var (
		first, second       CareerSummary
		firstErr, secondErr error
		wg                  conc.WaitGroup
	)
	wg.Go(func() { first, firstErr = s.players.GetCareerStats(ctx, name1) })
	wg.Go(func() { second, secondErr = s.players.GetCareerStats(ctx, name2) })
	wg.Wait()

	if firstErr != nil {
		return Comparison{}, firstErr
	}
	if secondErr != nil {
		return Comparison{}, secondErr
	}

	return Comparison{
		Player1:  first.PlayerName,
		Player2:  second.PlayerName,
		Totals:   compareEntries(first.Totals.Entries(), second.Totals.Entries()),
		Averages: compareEntries(first.Averages.Entries(), second.Averages.Entries()),
		Advanced: compareEntries(first.Advanced.Entries(), second.Advanced.Entries()),
	}, nil
}

func compareEntries(left, right []StatValue) []StatComparison {
	rightByKey := make(map[string]float64, len(right))
	for _, item := range right {
		rightByKey[item.Key] = item.Value
	}

	out := make([]StatComparison, 0, len(left))
	for _, item := range left {
		other, ok := rightByKey[item.Key]
		if !ok {
			continue
		}
		out = append(out, StatComparison{
			Key:        item.Key,
			Player1:    item.Value,
			Player2:    other,
			Difference: metric.Round(item.Value-other, 2),
		})
	}
	return out
}
