package memory

import (
	"context"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
)

// SeasonRepository serves the loaded table. It is never written after
// construction, so reads take no lock.
type SeasonRepository struct {
	rows            []season.Row
	byPlayer        map[string][]int
	byTeam          map[string][]int
	bySeason        map[string][]int
	playerNames     []string
	teams           []string
	seasons         []string
	seasonsByPlayer map[string][]string
}

func NewSeasonRepository(rows []season.Row) *SeasonRepository {
	r := &SeasonRepository{
		rows:            append([]season.Row(nil), rows...),
		byPlayer:        make(map[string][]int),
		byTeam:          make(map[string][]int),
		bySeason:        make(map[string][]int),
		seasonsByPlayer: make(map[string][]string),
	}

	seenSeasonByPlayer := make(map[string]map[string]struct{})
	for i, row := range r.rows {
		if _, ok := r.byPlayer[row.PlayerName]; !ok {
			r.playerNames = append(r.playerNames, row.PlayerName)
			seenSeasonByPlayer[row.PlayerName] = make(map[string]struct{})
		}
		r.byPlayer[row.PlayerName] = append(r.byPlayer[row.PlayerName], i)

		team := strings.ToUpper(row.TeamAbbreviation)
		if _, ok := r.byTeam[team]; !ok {
			r.teams = append(r.teams, row.TeamAbbreviation)
		}
		r.byTeam[team] = append(r.byTeam[team], i)

		if _, ok := r.bySeason[row.SeasonID]; !ok {
			r.seasons = append(r.seasons, row.SeasonID)
		}
		r.bySeason[row.SeasonID] = append(r.bySeason[row.SeasonID], i)

		if _, ok := seenSeasonByPlayer[row.PlayerName][row.SeasonID]; !ok {
			seenSeasonByPlayer[row.PlayerName][row.SeasonID] = struct{}{}
			r.seasonsByPlayer[row.PlayerName] = append(r.seasonsByPlayer[row.PlayerName], row.SeasonID)
		}
	}

	return r
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Row, error) {
	out := make([]season.Row, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *SeasonRepository) ListBySeason(_ context.Context, seasonID string) ([]season.Row, error) {
	return r.pick(r.bySeason[seasonID]), nil
}

func (r *SeasonRepository) ListByTeam(_ context.Context, teamAbbreviation string) ([]season.Row, error) {
	return r.pick(r.byTeam[strings.ToUpper(teamAbbreviation)]), nil
}

func (r *SeasonRepository) ListByPlayerName(_ context.Context, playerName string) ([]season.Row, error) {
	return r.pick(r.byPlayer[playerName]), nil
}

func (r *SeasonRepository) PlayerNames(_ context.Context) ([]string, error) {
	return append([]string(nil), r.playerNames...), nil
}

func (r *SeasonRepository) Teams(_ context.Context) ([]string, error) {
	return append([]string(nil), r.teams...), nil
}

func (r *SeasonRepository) Seasons(_ context.Context) ([]string, error) {
	return append([]string(nil), r.seasons...), nil
}

func (r *SeasonRepository) SeasonsByPlayer(_ context.Context, playerName string) ([]string, error) {
	return append([]string(nil), r.seasonsByPlayer[playerName]...), nil
}

func (r *SeasonRepository) pick(positions []int) []season.Row {
	out := make([]season.Row, 0, len(positions))
	for _, i := range positions {
		out = append(out, r.rows[i])
	}
	return out
}
