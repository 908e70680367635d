// Package metric holds the derived-stat formulas used across the engine.
package metric

import "math"

// Round rounds v to places decimals, halves away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Pct is made/attempted as a percentage with one decimal, 0 when nothing was attempted.
func Pct(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return Round(100*made/attempted, 1)
}

// PerGame divides total by games, treating zero games as one.
func PerGame(total, games float64) float64 {
	if games == 0 {
		games = 1
	}
	return Round(total/games, 2)
}

// TrueShootingPct returns PTS / (2 * (FGA + 0.44 * FTA)) as a percentage.
func TrueShootingPct(points, fga, fta float64) float64 {
	if fga == 0 && fta == 0 {
		return 0
	}
	return Round(100*points/(2*(fga+0.44*fta)), 1)
}

// BoxTotals are the summed inputs of EfficiencyRating.
type BoxTotals struct {
	Minutes float64
	FGM     float64
	FGA     float64
	FTM     float64
	FTA     float64
	FG3M    float64
	OREB    float64
	DREB    float64
	AST     float64
	STL     float64
	BLK     float64
	PF      float64
	TOV     float64
}

// EfficiencyRating is a simplified per-48-minute production index.
// FGA and FTA do not enter the formula.
func EfficiencyRating(t BoxTotals) float64 {
	if t.Minutes == 0 {
		return 0
	}
	raw := t.FGM*2.35 +
		t.FG3M*0.5 +
		t.FTM*0.5 +
		t.AST*0.5 +
		t.STL*0.5 +
		t.BLK*0.5 +
		t.OREB*0.4 +
		t.DREB*0.3 -
		t.PF*0.5 -
		t.TOV
	return Round(raw/(t.Minutes/48), 1)
}
