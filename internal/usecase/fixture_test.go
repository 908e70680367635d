package usecase

import (
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/infrastructure/repository/memory"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
)

func row(id int64, name, seasonID, team string, gp, pts int) season.Row {
	return season.Row{
		PlayerID:         id,
		PlayerName:       name,
		SeasonID:         seasonID,
		TeamAbbreviation: team,
		GP:               gp,
		GS:               gp,
		MIN:              float64(gp) * 30,
		PTS:              pts,
	}
}

func withShooting(r season.Row, fgm, fga, fg3m, fg3a, ftm, fta int) season.Row {
	r.FGM, r.FGA = fgm, fga
	r.FG3M, r.FG3A = fg3m, fg3a
	r.FTM, r.FTA = ftm, fta
	r.FGPct = metric.Pct(float64(fgm), float64(fga))
	r.FG3Pct = metric.Pct(float64(fg3m), float64(fg3a))
	r.FTPct = metric.Pct(float64(ftm), float64(fta))
	return r
}

func leagueRows() []season.Row {
	curry21 := withShooting(row(1, "Stephen Curry", "2021-22", "GSW", 64, 1630), 538, 1224, 285, 750, 305, 331)
	curry21.REB, curry21.AST, curry21.STL, curry21.BLK, curry21.TOV, curry21.PF = 335, 404, 83, 28, 206, 131
	curry22 := withShooting(row(1, "Stephen Curry", "2022-23", "GSW", 56, 1648), 563, 1136, 273, 639, 257, 283)
	curry22.REB, curry22.AST, curry22.STL, curry22.BLK, curry22.TOV, curry22.PF = 341, 352, 52, 20, 179, 117

	durantBKN := withShooting(row(2, "Kevin Durant", "2022-23", "BKN", 39, 1166), 430, 767, 71, 189, 235, 256)
	durantPHX := withShooting(row(2, "Kevin Durant", "2022-23", "PHX", 8, 217), 80, 140, 14, 33, 43, 47)
	durantTOT := withShooting(row(2, "Kevin Durant", "2022-23", "TOT", 47, 1366), 510, 907, 85, 222, 278, 303)

	green := withShooting(row(3, "Draymond Green", "2022-23", "GSW", 73, 624), 244, 463, 37, 121, 99, 173)
	jokic := withShooting(row(4, "Nikola Jokic", "2021-22", "DEN", 74, 2004), 764, 1314, 97, 287, 379, 469)
	jokic2 := withShooting(row(4, "Nikola Jokic", "2022-23", "DEN", 69, 1690), 646, 1022, 57, 149, 341, 415)

	return []season.Row{curry21, durantBKN, curry22, durantPHX, durantTOT, green, jokic, jokic2}
}

func newRepo(rows []season.Row) *memory.SeasonRepository {
	return memory.NewSeasonRepository(rows)
}

func newPlayerService(rows []season.Row) *PlayerService {
	repo := newRepo(rows)
	return NewPlayerService(repo, NewNameResolver(repo, nil), logging.NewNop())
}
