package main

import "github.com/bryanfernandez-eng/nba-glass/internal/usecase"

type statView struct {
	Stat  string  `json:"stat"`
	Value float64 `json:"value"`
}

type careerView struct {
	PlayerName string     `json:"player_name"`
	Totals     []statView `json:"career_totals"`
	Averages   []statView `json:"career_averages"`
	Advanced   []statView `json:"advanced_stats"`
}

func statsToView(entries []usecase.StatValue) []statView {
	out := make([]statView, 0, len(entries))
	for _, e := range entries {
		out = append(out, statView{Stat: e.Key, Value: e.Value})
	}
	return out
}

func careerToView(v usecase.CareerSummary) careerView {
	return careerView{
		PlayerName: v.PlayerName,
		Totals:     statsToView(v.Totals.Entries()),
		Averages:   statsToView(v.Averages.Entries()),
		Advanced:   statsToView(v.Advanced.Entries()),
	}
}

type rankingEntryView struct {
	Rank        int     `json:"rank"`
	PlayerName  string  `json:"player_name"`
	Teams       string  `json:"teams"`
	Value       float64 `json:"value"`
	GamesPlayed int     `json:"games_played"`
}

type rankingView struct {
	Stat     string             `json:"stat"`
	Kind     string             `json:"kind"`
	SeasonID string             `json:"season_id,omitempty"`
	MinGames int                `json:"min_games"`
	Entries  []rankingEntryView `json:"rankings"`
}

func rankingToView(v usecase.Ranking) rankingView {
	entries := make([]rankingEntryView, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, rankingEntryView{
			Rank:        e.Rank,
			PlayerName:  e.PlayerName,
			Teams:       e.Teams,
			Value:       e.Value,
			GamesPlayed: e.GamesPlayed,
		})
	}
	return rankingView{
		Stat:     v.Stat.String(),
		Kind:     v.Kind.String(),
		SeasonID: v.SeasonID,
		MinGames: v.MinGames,
		Entries:  entries,
	}
}

type comparisonLineView struct {
	Stat       string  `json:"stat"`
	Player1    float64 `json:"player1"`
	Player2    float64 `json:"player2"`
	Difference float64 `json:"difference"`
}

type comparisonView struct {
	Player1  string               `json:"player1"`
	Player2  string               `json:"player2"`
	Totals   []comparisonLineView `json:"career_totals"`
	Averages []comparisonLineView `json:"career_averages"`
	Advanced []comparisonLineView `json:"advanced_stats"`
}

func comparisonLines(items []usecase.StatComparison) []comparisonLineView {
	out := make([]comparisonLineView, 0, len(items))
	for _, c := range items {
		out = append(out, comparisonLineView{
			Stat:       c.Key,
			Player1:    c.Player1,
			Player2:    c.Player2,
			Difference: c.Difference,
		})
	}
	return out
}

func comparisonToView(v usecase.Comparison) comparisonView {
	return comparisonView{
		Player1:  v.Player1,
		Player2:  v.Player2,
		Totals:   comparisonLines(v.Totals),
		Averages: comparisonLines(v.Averages),
		Advanced: comparisonLines(v.Advanced),
	}
}
