package httpapi

import (
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
)

// seasonRowDTO mirrors the upstream column names of the season table.
type seasonRowDTO struct {
	PlayerID         int64   `json:"PLAYER_ID"`
	PlayerName       string  `json:"PLAYER_NAME,omitempty"`
	SeasonID         string  `json:"SEASON_ID"`
	TeamID           int64   `json:"TEAM_ID"`
	TeamAbbreviation string  `json:"TEAM_ABBREVIATION"`
	PlayerAge        float64 `json:"PLAYER_AGE"`
	GP               int     `json:"GP"`
	GS               int     `json:"GS"`
	MIN              float64 `json:"MIN"`
	FGM              int     `json:"FGM"`
	FGA              int     `json:"FGA"`
	FGPct            float64 `json:"FG_PCT"`
	FG3M             int     `json:"FG3M"`
	FG3A             int     `json:"FG3A"`
	FG3Pct           float64 `json:"FG3_PCT"`
	FTM              int     `json:"FTM"`
	FTA              int     `json:"FTA"`
	FTPct            float64 `json:"FT_PCT"`
	OREB             int     `json:"OREB"`
	DREB             int     `json:"DREB"`
	REB              int     `json:"REB"`
	AST              int     `json:"AST"`
	STL              int     `json:"STL"`
	BLK              int     `json:"BLK"`
	TOV              int     `json:"TOV"`
	PF               int     `json:"PF"`
	PTS              int     `json:"PTS"`
}

func seasonRowsToDTO(rows []season.Row) []seasonRowDTO {
	items := make([]seasonRowDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, seasonRowDTO{
			PlayerID:         r.PlayerID,
			PlayerName:       r.PlayerName,
			SeasonID:         r.SeasonID,
			TeamID:           r.TeamID,
			TeamAbbreviation: r.TeamAbbreviation,
			PlayerAge:        r.PlayerAge,
			GP:               r.GP,
			GS:               r.GS,
			MIN:              r.MIN,
			FGM:              r.FGM,
			FGA:              r.FGA,
			FGPct:            r.FGPct,
			FG3M:             r.FG3M,
			FG3A:             r.FG3A,
			FG3Pct:           r.FG3Pct,
			FTM:              r.FTM,
			FTA:              r.FTA,
			FTPct:            r.FTPct,
			OREB:             r.OREB,
			DREB:             r.DREB,
			REB:              r.REB,
			AST:              r.AST,
			STL:              r.STL,
			BLK:              r.BLK,
			TOV:              r.TOV,
			PF:               r.PF,
			PTS:              r.PTS,
		})
	}
	return items
}

type careerTotalsDTO struct {
	GP     int     `json:"GP"`
	GS     int     `json:"GS"`
	MIN    int     `json:"MIN"`
	PTS    int     `json:"PTS"`
	REB    int     `json:"REB"`
	AST    int     `json:"AST"`
	STL    int     `json:"STL"`
	BLK    int     `json:"BLK"`
	TOV    int     `json:"TOV"`
	FGM    int     `json:"FGM"`
	FGA    int     `json:"FGA"`
	FGPct  float64 `json:"FG%"`
	FG3M   int     `json:"3PM"`
	FG3A   int     `json:"3PA"`
	FG3Pct float64 `json:"3P%"`
	FTM    int     `json:"FTM"`
	FTA    int     `json:"FTA"`
	FTPct  float64 `json:"FT%"`
	OREB   int     `json:"OREB"`
	DREB   int     `json:"DREB"`
	PF     int     `json:"PF"`
}

type careerAveragesDTO struct {
	PPG    float64 `json:"PPG"`
	RPG    float64 `json:"RPG"`
	APG    float64 `json:"APG"`
	SPG    float64 `json:"SPG"`
	BPG    float64 `json:"BPG"`
	TPG    float64 `json:"TPG"`
	FGAPG  float64 `json:"FGAPG"`
	FGMPG  float64 `json:"FGMPG"`
	FG3APG float64 `json:"3PAPG"`
	FG3MPG float64 `json:"3PMPG"`
	FTAPG  float64 `json:"FTAPG"`
	FTMPG  float64 `json:"FTMPG"`
	OREBPG float64 `json:"OREBPG"`
	DREBPG float64 `json:"DREBPG"`
	FPG    float64 `json:"FPG"`
	FGPct  float64 `json:"FG%"`
	FG3Pct float64 `json:"3P%"`
	FTPct  float64 `json:"FT%"`
}

type advancedStatsDTO struct {
	TrueShootingPct  float64 `json:"TS%"`
	EfficiencyRating float64 `json:"PER"`
}

type careerDTO struct {
	PlayerName     string            `json:"player_name"`
	CareerTotals   careerTotalsDTO   `json:"career_totals"`
	CareerAverages careerAveragesDTO `json:"career_averages"`
	AdvancedStats  advancedStatsDTO  `json:"advanced_stats"`
}

func careerToDTO(v usecase.CareerSummary) careerDTO {
	t, a := v.Totals, v.Averages
	return careerDTO{
		PlayerName: v.PlayerName,
		CareerTotals: careerTotalsDTO{
			GP: t.GP, GS: t.GS, MIN: t.MIN,
			PTS: t.PTS, REB: t.REB, AST: t.AST, STL: t.STL, BLK: t.BLK, TOV: t.TOV,
			FGM: t.FGM, FGA: t.FGA, FGPct: t.FGPct,
			FG3M: t.FG3M, FG3A: t.FG3A, FG3Pct: t.FG3Pct,
			FTM: t.FTM, FTA: t.FTA, FTPct: t.FTPct,
			OREB: t.OREB, DREB: t.DREB, PF: t.PF,
		},
		CareerAverages: careerAveragesDTO{
			PPG: a.PPG, RPG: a.RPG, APG: a.APG, SPG: a.SPG, BPG: a.BPG, TPG: a.TPG,
			FGAPG: a.FGAPG, FGMPG: a.FGMPG, FG3APG: a.FG3APG, FG3MPG: a.FG3MPG,
			FTAPG: a.FTAPG, FTMPG: a.FTMPG, OREBPG: a.OREBPG, DREBPG: a.DREBPG,
			FPG: a.FPG, FGPct: a.FGPct, FG3Pct: a.FG3Pct, FTPct: a.FTPct,
		},
		AdvancedStats: advancedStatsDTO{
			TrueShootingPct:  v.Advanced.TrueShootingPct,
			EfficiencyRating: v.Advanced.EfficiencyRating,
		},
	}
}

type trendPointDTO struct {
	SeasonID string  `json:"season_id"`
	Team     string  `json:"team"`
	Value    float64 `json:"value"`
}

type trendDTO struct {
	PlayerName string          `json:"player_name"`
	Stat       string          `json:"stat"`
	Points     []trendPointDTO `json:"points"`
}

func trendToDTO(v usecase.StatTrend) trendDTO {
	points := make([]trendPointDTO, 0, len(v.Points))
	for _, p := range v.Points {
		points = append(points, trendPointDTO{SeasonID: p.SeasonID, Team: p.Team, Value: p.Value})
	}
	return trendDTO{PlayerName: v.PlayerName, Stat: v.Stat.String(), Points: points}
}

type teamSeasonDTO struct {
	SeasonID   string  `json:"season_id"`
	GP         int     `json:"GP"`
	NumPlayers int     `json:"num_players"`
	PTS        int     `json:"PTS"`
	REB        int     `json:"REB"`
	AST        int     `json:"AST"`
	STL        int     `json:"STL"`
	BLK        int     `json:"BLK"`
	TOV        int     `json:"TOV"`
	PF         int     `json:"PF"`
	OREB       int     `json:"OREB"`
	DREB       int     `json:"DREB"`
	FGM        int     `json:"FGM"`
	FGA        int     `json:"FGA"`
	FGPct      float64 `json:"FG_PCT"`
	FG3M       int     `json:"FG3M"`
	FG3A       int     `json:"FG3A"`
	FG3Pct     float64 `json:"FG3_PCT"`
	FTM        int     `json:"FTM"`
	FTA        int     `json:"FTA"`
	FTPct      float64 `json:"FT_PCT"`
}

type teamStatsDTO struct {
	Team    string          `json:"team"`
	Seasons []teamSeasonDTO `json:"seasons"`
}

func teamSeasonToDTO(v usecase.TeamSeasonStats) teamSeasonDTO {
	return teamSeasonDTO{
		SeasonID: v.SeasonID, GP: v.GP, NumPlayers: v.NumPlayers,
		PTS: v.PTS, REB: v.REB, AST: v.AST, STL: v.STL, BLK: v.BLK, TOV: v.TOV, PF: v.PF,
		OREB: v.OREB, DREB: v.DREB,
		FGM: v.FGM, FGA: v.FGA, FGPct: v.FGPct,
		FG3M: v.FG3M, FG3A: v.FG3A, FG3Pct: v.FG3Pct,
		FTM: v.FTM, FTA: v.FTA, FTPct: v.FTPct,
	}
}

func teamStatsToDTO(v usecase.TeamStats) teamStatsDTO {
	seasons := make([]teamSeasonDTO, 0, len(v.Seasons))
	for _, s := range v.Seasons {
		seasons = append(seasons, teamSeasonToDTO(s))
	}
	return teamStatsDTO{Team: v.Team, Seasons: seasons}
}

type rankingEntryDTO struct {
	Rank        int     `json:"rank"`
	PlayerName  string  `json:"player_name"`
	Teams       string  `json:"teams"`
	Value       float64 `json:"value"`
	GamesPlayed int     `json:"games_played"`
}

type rankingDTO struct {
	Stat     string            `json:"stat"`
	Kind     string            `json:"kind"`
	SeasonID string            `json:"season_id,omitempty"`
	MinGames int               `json:"min_games"`
	Rankings []rankingEntryDTO `json:"rankings"`
}

func rankingToDTO(v usecase.Ranking) rankingDTO {
	entries := make([]rankingEntryDTO, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, rankingEntryDTO{
			Rank:        e.Rank,
			PlayerName:  e.PlayerName,
			Teams:       e.Teams,
			Value:       e.Value,
			GamesPlayed: e.GamesPlayed,
		})
	}
	return rankingDTO{
		Stat:     v.Stat.String(),
		Kind:     v.Kind.String(),
		SeasonID: v.SeasonID,
		MinGames: v.MinGames,
		Rankings: entries,
	}
}

type statComparisonDTO struct {
	Stat       string  `json:"stat"`
	Player1    float64 `json:"player1"`
	Player2    float64 `json:"player2"`
	Difference float64 `json:"difference"`
}

type comparisonDTO struct {
	Player1  string              `json:"player1"`
	Player2  string              `json:"player2"`
	Totals   []statComparisonDTO `json:"career_totals"`
	Averages []statComparisonDTO `json:"career_averages"`
	Advanced []statComparisonDTO `json:"advanced_stats"`
}

func comparisonToDTO(v usecase.Comparison) comparisonDTO {
	group := func(items []usecase.StatComparison) []statComparisonDTO {
		out := make([]statComparisonDTO, 0, len(items))
		for _, c := range items {
			out = append(out, statComparisonDTO{Stat: c.Key, Player1: c.Player1, Player2: c.Player2, Difference: c.Difference})
		}
		return out
	}
	return comparisonDTO{
		Player1:  v.Player1,
		Player2:  v.Player2,
		Totals:   group(v.Totals),
		Averages: group(v.Averages),
		Advanced: group(v.Advanced),
	}
}

type efficiencyLeaderDTO struct {
	Rank            int     `json:"rank"`
	PlayerName      string  `json:"player_name"`
	Team            string  `json:"team"`
	GamesPlayed     int     `json:"games_played"`
	PPG             float64 `json:"ppg"`
	TrueShootingPct float64 `json:"ts_pct"`
}

func efficiencyLeadersToDTO(items []usecase.EfficiencyLeader) []efficiencyLeaderDTO {
	out := make([]efficiencyLeaderDTO, 0, len(items))
	for _, v := range items {
		out = append(out, efficiencyLeaderDTO{
			Rank:            v.Rank,
			PlayerName:      v.PlayerName,
			Team:            v.Team,
			GamesPlayed:     v.GamesPlayed,
			PPG:             v.PPG,
			TrueShootingPct: v.TrueShootingPct,
		})
	}
	return out
}

type improvedPlayerDTO struct {
	Rank        int     `json:"rank"`
	PlayerName  string  `json:"player_name"`
	Year1Team   string  `json:"year1_team"`
	Year2Team   string  `json:"year2_team"`
	Year1GP     int     `json:"year1_gp"`
	Year2GP     int     `json:"year2_gp"`
	Year1Value  float64 `json:"year1_value"`
	Year2Value  float64 `json:"year2_value"`
	Improvement float64 `json:"improvement"`
}

type mostImprovedDTO struct {
	Stat     string              `json:"stat"`
	Season1  string              `json:"season1"`
	Season2  string              `json:"season2"`
	MinGames int                 `json:"min_games"`
	Players  []improvedPlayerDTO `json:"players"`
}

func mostImprovedToDTO(v usecase.MostImproved) mostImprovedDTO {
	players := make([]improvedPlayerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, improvedPlayerDTO{
			Rank:        p.Rank,
			PlayerName:  p.PlayerName,
			Year1Team:   p.Year1Team,
			Year2Team:   p.Year2Team,
			Year1GP:     p.Year1GP,
			Year2GP:     p.Year2GP,
			Year1Value:  p.Year1Value,
			Year2Value:  p.Year2Value,
			Improvement: p.Improvement,
		})
	}
	return mostImprovedDTO{
		Stat:     v.Stat.String(),
		Season1:  v.Season1,
		Season2:  v.Season2,
		MinGames: v.MinGames,
		Players:  players,
	}
}
