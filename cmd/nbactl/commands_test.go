package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliCSV = `PLAYER_ID,PLAYER_NAME,SEASON_ID,TEAM_ID,TEAM_ABBREVIATION,PLAYER_AGE,GP,GS,MIN,FGM,FGA,FG3M,FG3A,FTM,FTA,OREB,DREB,REB,AST,STL,BLK,TOV,PF,PTS
201939,Stephen Curry,2021-22,1610612744,GSW,34,64,64,2211,535,1224,285,750,269,293,34,301,335,404,82,28,206,134,1624
201939,Stephen Curry,2022-23,1610612744,GSW,35,56,56,1941,560,1143,273,639,257,281,39,302,341,352,52,20,179,117,1648
201142,Kevin Durant,2022-23,1610612751,BKN,34,39,39,1416,408,730,73,194,250,270,17,245,262,207,32,53,134,79,1139
203110,Draymond Green,2022-23,1610612744,GSW,33,73,73,2297,264,502,40,131,96,168,75,458,533,498,78,58,177,226,623
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "player_stats.csv")
	if err := os.WriteFile(path, []byte(cliCSV), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	t.Setenv("DATASET_PATH", path)
	t.Setenv("DATASET_STRICT", "true")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestCareerCommand(t *testing.T) {
	out, err := runCLI(t, "career", "stephen curry")
	require.NoError(t, err)

	var view careerView
	require.NoError(t, sonic.UnmarshalString(out, &view))
	assert.Equal(t, "Stephen Curry", view.PlayerName)
	require.NotEmpty(t, view.Totals)
	assert.Equal(t, statView{Stat: "GP", Value: 120}, view.Totals[0])
	assert.Equal(t, statView{Stat: "PPG", Value: 27.27}, view.Averages[0])
}

func TestCareerCommand_UnknownPlayer(t *testing.T) {
	_, err := runCLI(t, "career", "Nobody Atall")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestRankingsCommand(t *testing.T) {
	out, err := runCLI(t, "rankings", "pts", "--season", "2022-23", "--min-games", "40", "--limit", "1")
	require.NoError(t, err)

	var view rankingView
	require.NoError(t, sonic.UnmarshalString(out, &view))
	assert.Equal(t, "PTS", view.Stat)
	assert.Equal(t, "counting", view.Kind)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "Stephen Curry", view.Entries[0].PlayerName)
	assert.Equal(t, 29.43, view.Entries[0].Value)
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, "compare", "Stephen Curry", "Kevin Durant")
	require.NoError(t, err)

	var view comparisonView
	require.NoError(t, sonic.UnmarshalString(out, &view))
	assert.Equal(t, "Stephen Curry", view.Player1)
	assert.Equal(t, "Kevin Durant", view.Player2)
	require.NotEmpty(t, view.Totals)
	assert.Equal(t, "GP", view.Totals[0].Stat)
	assert.Equal(t, float64(81), view.Totals[0].Difference)
}

func TestExportCareersCommand(t *testing.T) {
	out, err := runCLI(t, "export-careers", "--workers", "2")
	require.NoError(t, err)

	var views []careerView
	require.NoError(t, sonic.UnmarshalString(out, &views))
	require.Len(t, views, 3)
	assert.Equal(t, "Stephen Curry", views[0].PlayerName)
	assert.Equal(t, "Kevin Durant", views[1].PlayerName)
	assert.Equal(t, "Draymond Green", views[2].PlayerName)
}

func TestCommands_RejectWrongArgCount(t *testing.T) {
	_, err := runCLI(t, "compare", "Stephen Curry")
	require.Error(t, err)
}

func TestRootCmd_Layout(t *testing.T) {
	root := newRootCmd()
	assert.True(t, root.SilenceUsage)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"career", "rankings", "compare", "export-careers"}, names)
}
