package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

// TeamSeasonStats is one season of a team rollup.
type TeamSeasonStats struct {
	SeasonID   string
	GP         int
	NumPlayers int
	PTS        int
	REB        int
	AST        int
	STL        int
	BLK        int
	TOV        int
	PF         int
	OREB       int
	DREB       int
	FGM        int
	FGA        int
	FGPct      float64
	FG3M       int
	FG3A       int
	FG3Pct     float64
	FTM        int
	FTA        int
	FTPct      float64
}

type TeamStats struct {
	Team    string
	Seasons []TeamSeasonStats
}

type TeamService struct {
	repo season.Repository
}

func NewTeamService(repo season.Repository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) ListTeams(ctx context.Context) (teams []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()
	defer recoverProcessing("list teams", &err)

	teams, err = s.repo.Teams(ctx)
	if err != nil {
		return nil, processingError("list teams", err)
	}
	return teams, nil
}

// GetTeamStats groups the team's rows by season, seasons ascending.
func (s *TeamService) GetTeamStats(ctx context.Context, team string) (stats TeamStats, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamStats")
	defer span.End()
	defer recoverProcessing("get team stats", &err)

	abbr, rows, err := s.teamRows(ctx, team)
	if err != nil {
		return TeamStats{}, err
	}
	return TeamStats{Team: abbr, Seasons: rollupBySeason(rows)}, nil
}

func (s *TeamService) GetTeamSeasonStats(ctx context.Context, team, seasonID string) (stats TeamSeasonStats, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamSeasonStats")
	defer span.End()
	defer recoverProcessing("get team season stats", &err)

	_, rows, err := s.teamRows(ctx, team)
	if err != nil {
		return TeamSeasonStats{}, err
	}

	seasonID = strings.TrimSpace(seasonID)
	all := rollupBySeason(rows)
	available := make([]string, 0, len(all))
	for _, item := range all {
		if item.SeasonID == seasonID {
			return item, nil
		}
		available = append(available, item.SeasonID)
	}
	return TeamSeasonStats{}, notFoundWithHint(resourceSeason, seasonID, HintAvailableSeasons, available, maxSeasonHints)
}

// ListTeamPlayers returns every distinct player who has a row with team.
func (s *TeamService) ListTeamPlayers(ctx context.Context, team string) (names []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamPlayers")
	defer span.End()
	defer recoverProcessing("list team players", &err)

	_, rows, err := s.teamRows(ctx, team)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.PlayerName]; ok {
			continue
		}
		seen[row.PlayerName] = struct{}{}
		names = append(names, row.PlayerName)
	}
	return names, nil
}

// teamRows fails with a Team NotFoundError whose hint lists every team.
func (s *TeamService) teamRows(ctx context.Context, team string) (string, []season.Row, error) {
	abbr := strings.ToUpper(strings.TrimSpace(team))
	rows, err := s.repo.ListByTeam(ctx, abbr)
	if err != nil {
		return "", nil, processingError("list rows by team", err)
	}
	if len(rows) > 0 {
		return abbr, rows, nil
	}

	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return "", nil, processingError("list teams", err)
	}
	return "", nil, notFoundWithHint(resourceTeam, abbr, HintAvailableTeams, teams, 0)
}

type teamSeasonAcc struct {
	stats   TeamSeasonStats
	players map[int64]struct{}
}

func rollupBySeason(rows []season.Row) []TeamSeasonStats {
	groups := make(map[string]*teamSeasonAcc)
	order := make([]string, 0)
	for _, row := range rows {
		acc, ok := groups[row.SeasonID]
		if !ok {
			// Games played is taken from the first row of the group.
			acc = &teamSeasonAcc{
				stats:   TeamSeasonStats{SeasonID: row.SeasonID, GP: row.GP},
				players: make(map[int64]struct{}),
			}
			groups[row.SeasonID] = acc
			order = append(order, row.SeasonID)
		}
		acc.players[row.PlayerID] = struct{}{}

		st := &acc.stats
		st.PTS += row.PTS
		st.REB += row.REB
		st.AST += row.AST
		st.STL += row.STL
		st.BLK += row.BLK
		st.TOV += row.TOV
		st.PF += row.PF
		st.OREB += row.OREB
		st.DREB += row.DREB
		st.FGM += row.FGM
		st.FGA += row.FGA
		st.FG3M += row.FG3M
		st.FG3A += row.FG3A
		st.FTM += row.FTM
		st.FTA += row.FTA
	}

	sort.Strings(order)
	out := make([]TeamSeasonStats, 0, len(order))
	for _, seasonID := range order {
		acc := groups[seasonID]
		st := acc.stats
		st.NumPlayers = len(acc.players)
		st.FGPct = metric.Pct(float64(st.FGM), float64(st.FGA))
		st.FG3Pct = metric.Pct(float64(st.FG3M), float64(st.FG3A))
		st.FTPct = metric.Pct(float64(st.FTM), float64(st.FTA))
		out = append(out, st)
	}
	return out
}
