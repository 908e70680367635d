package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/metric"
	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	crerr "github.com/cockroachdb/errors"
)

// ErrDataLoad marks every failure to turn the source table into rows.
var ErrDataLoad = errors.New("dataset load failed")

// LoadError points at the source position that could not be read.
type LoadError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load dataset ")
	b.WriteString(e.Source)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %s", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrDataLoad }

const (
	colPlayerID   = "PLAYER_ID"
	colPlayerName = "PLAYER_NAME"
	colSeasonID   = "SEASON_ID"
	colTeamID     = "TEAM_ID"
	colTeamAbbr   = "TEAM_ABBREVIATION"
	colPlayerAge  = "PLAYER_AGE"
)

var requiredColumns = []string{
	colPlayerID, colPlayerName, colSeasonID, colTeamAbbr,
	"GP", "GS", "MIN",
	"FGM", "FGA", "FG3M", "FG3A", "FTM", "FTA",
	"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

// LoadFile reads the season table at path.
func LoadFile(path string) ([]season.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: crerr.Wrap(err, "open")}
	}
	defer f.Close()

	return Read(path, f)
}

// Read parses a header-led CSV season table. Percentage columns are
// recomputed from makes and attempts rather than trusted from the source.
func Read(source string, r io.Reader) ([]season.Row, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Source: source, Err: crerr.New("empty source, header row missing")}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: crerr.Wrap(err, "read header")}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Source: source, Line: 1, Column: col, Err: crerr.New("required column missing")}
		}
	}

	rows := make([]season.Row, 0, 1024)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: crerr.Wrap(err, "read record")}
		}

		p := rowParser{record: record, index: index}
		row := season.Row{
			PlayerID:         p.int64Cell(colPlayerID),
			PlayerName:       p.textCell(colPlayerName),
			SeasonID:         p.textCell(colSeasonID),
			TeamID:           p.int64Cell(colTeamID),
			TeamAbbreviation: p.textCell(colTeamAbbr),
			PlayerAge:        p.floatCell(colPlayerAge),
			GP:               p.intCell("GP"),
			GS:               p.intCell("GS"),
			MIN:              p.floatCell("MIN"),
			FGM:              p.intCell("FGM"),
			FGA:              p.intCell("FGA"),
			FG3M:             p.intCell("FG3M"),
			FG3A:             p.intCell("FG3A"),
			FTM:              p.intCell("FTM"),
			FTA:              p.intCell("FTA"),
			OREB:             p.intCell("OREB"),
			DREB:             p.intCell("DREB"),
			REB:              p.intCell("REB"),
			AST:              p.intCell("AST"),
			STL:              p.intCell("STL"),
			BLK:              p.intCell("BLK"),
			TOV:              p.intCell("TOV"),
			PF:               p.intCell("PF"),
			PTS:              p.intCell("PTS"),
		}
		if p.err != nil {
			return nil, &LoadError{Source: source, Line: line, Column: p.errColumn, Err: p.err}
		}
		row.FGPct = metric.Pct(float64(row.FGM), float64(row.FGA))
		row.FG3Pct = metric.Pct(float64(row.FG3M), float64(row.FG3A))
		row.FTPct = metric.Pct(float64(row.FTM), float64(row.FTA))

		rows = append(rows, row)
	}

	return rows, nil
}

// rowParser keeps the first cell error so a record is parsed in one pass.
type rowParser struct {
	record    []string
	index     map[string]int
	err       error
	errColumn string
}

func (p *rowParser) cell(col string) string {
	i, ok := p.index[col]
	if !ok || i >= len(p.record) {
		return ""
	}
	return strings.TrimSpace(p.record[i])
}

func (p *rowParser) textCell(col string) string {
	return p.cell(col)
}

func (p *rowParser) fail(col string, err error) {
	if p.err == nil {
		p.err = err
		p.errColumn = col
	}
}

func (p *rowParser) floatCell(col string) float64 {
	raw := p.cell(col)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(col, crerr.Newf("invalid number %q", raw))
		return 0
	}
	return v
}

func (p *rowParser) int64Cell(col string) int64 {
	raw := p.cell(col)
	if raw == "" {
		return 0
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) {
		p.fail(col, crerr.Newf("invalid integer %q", raw))
		return 0
	}
	return int64(v)
}

func (p *rowParser) intCell(col string) int {
	return int(p.int64Cell(col))
}
