package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "PLAYER_ID,SEASON_ID,LEAGUE_ID,TEAM_ID,TEAM_ABBREVIATION,PLAYER_AGE,GP,GS,MIN,FGM,FGA,FG_PCT,FG3M,FG3A,FG3_PCT,FTM,FTA,FT_PCT,OREB,DREB,REB,AST,STL,BLK,TOV,PF,PTS,PLAYER_NAME\n"

func TestRead_ParsesRowsAndRecomputesPercentages(t *testing.T) {
	t.Parallel()

	src := header +
		"201939,2022-23,00,1610612744,GSW,35.0,56,56,1941.0,563,1136,0.496,273,639,0.427,257,283,0.908,39,302,341,352,52,20,179,117,1656,Stephen Curry\n" +
		"1630000,2022-23,00,,LAL,,0,0,0,0,0,,0,0,,0,0,,0,0,0,0,0,0,0,0,0,Rookie Player\n"

	rows, err := Read("inline", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	curry := rows[0]
	assert.Equal(t, int64(201939), curry.PlayerID)
	assert.Equal(t, "Stephen Curry", curry.PlayerName)
	assert.Equal(t, "2022-23", curry.SeasonID)
	assert.Equal(t, int64(1610612744), curry.TeamID)
	assert.Equal(t, "GSW", curry.TeamAbbreviation)
	assert.Equal(t, 35.0, curry.PlayerAge)
	assert.Equal(t, 56, curry.GP)
	assert.Equal(t, 1941.0, curry.MIN)
	assert.Equal(t, 1656, curry.PTS)
	assert.Equal(t, 49.6, curry.FGPct)
	assert.Equal(t, 42.7, curry.FG3Pct)
	assert.Equal(t, 90.8, curry.FTPct)

	rookie := rows[1]
	assert.Equal(t, int64(0), rookie.TeamID)
	assert.Equal(t, 0.0, rookie.FGPct)
}

func TestRead_AcceptsIntegralFloats(t *testing.T) {
	t.Parallel()

	src := header + "1,2022-23,00,2,BOS,25,70.0,70,2000,500.0,1000,0.5,100,300,0.333,200,250,0.8,50,400,450,300,60,40,150,120,1300,Test Guy\n"
	rows, err := Read("inline", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 70, rows[0].GP)
	assert.Equal(t, 500, rows[0].FGM)
}

func TestRead_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		column string
		line   int
	}{
		{name: "empty source", src: ""},
		{name: "missing column", src: "PLAYER_ID,PLAYER_NAME\n1,A\n", column: "SEASON_ID", line: 1},
		{
			name:   "bad number",
			src:    header + "1,2022-23,00,2,BOS,25,lots,70,2000,500,1000,0.5,100,300,0.333,200,250,0.8,50,400,450,300,60,40,150,120,1300,Test Guy\n",
			column: "GP",
			line:   2,
		},
		{
			name:   "fractional integer",
			src:    header + "1,2022-23,00,2,BOS,25,70,70,2000,500,1000,0.5,100,300,0.333,200,250,0.8,50,400,450,300,60,40,150,120,1300.5,Test Guy\n",
			column: "PTS",
			line:   2,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rows, err := Read("inline", strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Nil(t, rows)
			assert.True(t, errors.Is(err, ErrDataLoad))

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tc.column, loadErr.Column)
			assert.Equal(t, tc.line, loadErr.Line)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "totals.csv")
	src := header + "1,2022-23,00,2,BOS,25,70,70,2000,500,1000,0.5,100,300,0.333,200,250,0.8,50,400,450,300,60,40,150,120,1300,Test Guy\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	rows, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
