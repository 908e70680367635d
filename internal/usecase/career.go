package usecase

import (
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

// StatValue is one keyed entry of a career group, in display order.
type StatValue struct {
	Key   string
	Value float64
}

type CareerTotals struct {
	GP     int
	GS     int
	MIN    int
	PTS    int
	REB    int
	AST    int
	STL    int
	BLK    int
	TOV    int
	FGM    int
	FGA    int
	FGPct  float64
	FG3M   int
	FG3A   int
	FG3Pct float64
	FTM    int
	FTA    int
	FTPct  float64
	OREB   int
	DREB   int
	PF     int
}

func (t CareerTotals) Entries() []StatValue {
	return []StatValue{
		{"GP", float64(t.GP)},
		{"GS", float64(t.GS)},
		{"MIN", float64(t.MIN)},
		{"PTS", float64(t.PTS)},
		{"REB", float64(t.REB)},
		{"AST", float64(t.AST)},
		{"STL", float64(t.STL)},
		{"BLK", float64(t.BLK)},
		{"TOV", float64(t.TOV)},
		{"FGM", float64(t.FGM)},
		{"FGA", float64(t.FGA)},
		{"FG%", t.FGPct},
		{"3PM", float64(t.FG3M)},
		{"3PA", float64(t.FG3A)},
		{"3P%", t.FG3Pct},
		{"FTM", float64(t.FTM)},
		{"FTA", float64(t.FTA)},
		{"FT%", t.FTPct},
		{"OREB", float64(t.OREB)},
		{"DREB", float64(t.DREB)},
		{"PF", float64(t.PF)},
	}
}

type CareerAverages struct {
	PPG    float64
	RPG    float64
	APG    float64
	SPG    float64
	BPG    float64
	TPG    float64
	FGAPG  float64
	FGMPG  float64
	FG3APG float64
	FG3MPG float64
	FTAPG  float64
	FTMPG  float64
	OREBPG float64
	DREBPG float64
	FPG    float64
	FGPct  float64
	FG3Pct float64
	FTPct  float64
}

func (a CareerAverages) Entries() []StatValue {
	return []StatValue{
		{"PPG", a.PPG},
		{"RPG", a.RPG},
		{"APG", a.APG},
		{"SPG", a.SPG},
		{"BPG", a.BPG},
		{"TPG", a.TPG},
		{"FGAPG", a.FGAPG},
		{"FGMPG", a.FGMPG},
		{"3PAPG", a.FG3APG},
		{"3PMPG", a.FG3MPG},
		{"FTAPG", a.FTAPG},
		{"FTMPG", a.FTMPG},
		{"OREBPG", a.OREBPG},
		{"DREBPG", a.DREBPG},
		{"FPG", a.FPG},
		{"FG%", a.FGPct},
		{"3P%", a.FG3Pct},
		{"FT%", a.FTPct},
	}
}

type AdvancedStats struct {
	TrueShootingPct  float64
	EfficiencyRating float64
}

func (a AdvancedStats) Entries() []StatValue {
	return []StatValue{
		{"TS%", a.TrueShootingPct},
		{"PER", a.EfficiencyRating},
	}
}

type CareerSummary struct {
	PlayerName string
	Totals     CareerTotals
	Averages   CareerAverages
	Advanced   AdvancedStats
}

type careerSums struct {
	gp, gs, min               float64
	pts, reb, ast, stl, blk   float64
	tov, fgm, fga, fg3m, fg3a float64
	ftm, fta, oreb, dreb, pf  float64
}

func sumCareer(rows []season.Row) careerSums {
	var s careerSums
	for _, row := range rows {
		s.gp += float64(row.GP)
		s.gs += float64(row.GS)
		s.min += row.MIN
		s.pts += float64(row.PTS)
		s.reb += float64(row.REB)
		s.ast += float64(row.AST)
		s.stl += float64(row.STL)
		s.blk += float64(row.BLK)
		s.tov += float64(row.TOV)
		s.fgm += float64(row.FGM)
		s.fga += float64(row.FGA)
		s.fg3m += float64(row.FG3M)
		s.fg3a += float64(row.FG3A)
		s.ftm += float64(row.FTM)
		s.fta += float64(row.FTA)
		s.oreb += float64(row.OREB)
		s.dreb += float64(row.DREB)
		s.pf += float64(row.PF)
	}
	return s
}

// buildCareerSummary sums rows and derives averages from the sums. Shooting
// percentages come from summed makes and attempts, never from row averages.
func buildCareerSummary(rows []season.Row) CareerSummary {
	s := sumCareer(rows)
	fgPct := metric.Pct(s.fgm, s.fga)
	fg3Pct := metric.Pct(s.fg3m, s.fg3a)
	ftPct := metric.Pct(s.ftm, s.fta)

	name := ""
	if len(rows) > 0 {
		name = rows[0].PlayerName
	}

	return CareerSummary{
		PlayerName: name,
		Totals: CareerTotals{
			GP:     int(s.gp),
			GS:     int(s.gs),
			MIN:    int(s.min),
			PTS:    int(s.pts),
			REB:    int(s.reb),
			AST:    int(s.ast),
			STL:    int(s.stl),
			BLK:    int(s.blk),
			TOV:    int(s.tov),
			FGM:    int(s.fgm),
			FGA:    int(s.fga),
			FGPct:  fgPct,
			FG3M:   int(s.fg3m),
			FG3A:   int(s.fg3a),
			FG3Pct: fg3Pct,
			FTM:    int(s.ftm),
			FTA:    int(s.fta),
			FTPct:  ftPct,
			OREB:   int(s.oreb),
			DREB:   int(s.dreb),
			PF:     int(s.pf),
		},
		Averages: CareerAverages{
			PPG:    metric.PerGame(s.pts, s.gp),
			RPG:    metric.PerGame(s.reb, s.gp),
			APG:    metric.PerGame(s.ast, s.gp),
			SPG:    metric.PerGame(s.stl, s.gp),
			BPG:    metric.PerGame(s.blk, s.gp),
			TPG:    metric.PerGame(s.tov, s.gp),
			FGAPG:  metric.PerGame(s.fga, s.gp),
			FGMPG:  metric.PerGame(s.fgm, s.gp),
			FG3APG: metric.PerGame(s.fg3a, s.gp),
			FG3MPG: metric.PerGame(s.fg3m, s.gp),
			FTAPG:  metric.PerGame(s.fta, s.gp),
			FTMPG:  metric.PerGame(s.ftm, s.gp),
			OREBPG: metric.PerGame(s.oreb, s.gp),
			DREBPG: metric.PerGame(s.dreb, s.gp),
			FPG:    metric.PerGame(s.pf, s.gp),
			FGPct:  fgPct,
			FG3Pct: fg3Pct,
			FTPct:  ftPct,
		},
		Advanced: AdvancedStats{
			TrueShootingPct: metric.TrueShootingPct(s.pts, s.fga, s.fta),
			EfficiencyRating: metric.EfficiencyRating(metric.BoxTotals{
				Minutes: s.min,
				FGM:     s.fgm,
				FGA:     s.fga,
				FTM:     s.ftm,
				FTA:     s.fta,
				FG3M:    s.fg3m,
				OREB:    s.oreb,
				DREB:    s.dreb,
				AST:     s.ast,
				STL:     s.stl,
				BLK:     s.blk,
				PF:      s.pf,
				TOV:     s.tov,
			}),
		},
	}
}
