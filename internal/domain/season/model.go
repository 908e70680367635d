package season

// Row is one player's regular-season totals for one season with one team.
// Traded players carry one row per team plus the upstream TOT row.
type Row struct {
	PlayerID         int64
	PlayerName       string
	SeasonID         string
	TeamID           int64
	TeamAbbreviation string
	PlayerAge        float64

	GP     int
	GS     int
	MIN    float64
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
	REB    int
	AST    int
	STL    int
	BLK    int
	TOV    int
	PF     int
	PTS    int
}
