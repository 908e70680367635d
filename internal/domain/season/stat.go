package season

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells whether a stat is summed across games or averaged across rows.
type Kind int

const (
	KindCounting Kind = iota + 1
	KindPercentage
)

func (k Kind) String() string {
	switch k {
	case KindCounting:
		return "counting"
	case KindPercentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// Stat is a numeric column of the season table.
type Stat string

const (
	StatGP     Stat = "GP"
	StatGS     Stat = "GS"
	StatMIN    Stat = "MIN"
	StatFGM    Stat = "FGM"
	StatFGA    Stat = "FGA"
	StatFGPct  Stat = "FG_PCT"
	StatFG3M   Stat = "FG3M"
	StatFG3A   Stat = "FG3A"
	StatFG3Pct Stat = "FG3_PCT"
	StatFTM    Stat = "FTM"
	StatFTA    Stat = "FTA"
	StatFTPct  Stat = "FT_PCT"
	StatOREB   Stat = "OREB"
	StatDREB   Stat = "DREB"
	StatREB    Stat = "REB"
	StatAST    Stat = "AST"
	StatSTL    Stat = "STL"
	StatBLK    Stat = "BLK"
	StatTOV    Stat = "TOV"
	StatPF     Stat = "PF"
	StatPTS    Stat = "PTS"
)

var allStats = []Stat{
	StatGP, StatGS, StatMIN,
	StatFGM, StatFGA, StatFGPct,
	StatFG3M, StatFG3A, StatFG3Pct,
	StatFTM, StatFTA, StatFTPct,
	StatOREB, StatDREB, StatREB,
	StatAST, StatSTL, StatBLK, StatTOV, StatPF, StatPTS,
}

var statIndex = func() map[Stat]struct{} {
	out := make(map[Stat]struct{}, len(allStats))
	for _, s := range allStats {
		out[s] = struct{}{}
	}
	return out
}()

// Stats returns every known stat in column order.
func Stats() []Stat {
	out := make([]Stat, len(allStats))
	copy(out, allStats)
	return out
}

// StatNames is Stats as plain strings.
func StatNames() []string {
	out := make([]string, 0, len(allStats))
	for _, s := range allStats {
		out = append(out, string(s))
	}
	return out
}

// ParseStat upper-cases raw and looks it up in the closed stat set.
func ParseStat(raw string) (Stat, bool) {
	candidate := Stat(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := statIndex[candidate]; !ok {
		return "", false
	}
	return candidate, true
}

func (s Stat) String() string {
	return string(s)
}

func (s Stat) Kind() Kind {
	switch s {
	case StatFGPct, StatFG3Pct, StatFTPct:
		return KindPercentage
	default:
		return KindCounting
	}
}

// Value reads the stat's column from row.
func (s Stat) Value(row Row) float64 {
	switch s {
	case StatGP:
		return float64(row.GP)
	case StatGS:
		return float64(row.GS)
	case StatMIN:
		return row.MIN
	case StatFGM:
		return float64(row.FGM)
	case StatFGA:
		return float64(row.FGA)
	case StatFGPct:
		return row.FGPct
	case StatFG3M:
		return float64(row.FG3M)
	case StatFG3A:
		return float64(row.FG3A)
	case StatFG3Pct:
		return row.FG3Pct
	case StatFTM:
		return float64(row.FTM)
	case StatFTA:
		return float64(row.FTA)
	case StatFTPct:
		return row.FTPct
	case StatOREB:
		return float64(row.OREB)
	case StatDREB:
		return float64(row.DREB)
	case StatREB:
		return float64(row.REB)
	case StatAST:
		return float64(row.AST)
	case StatSTL:
		return float64(row.STL)
	case StatBLK:
		return float64(row.BLK)
	case StatTOV:
		return float64(row.TOV)
	case StatPF:
		return float64(row.PF)
	case StatPTS:
		return float64(row.PTS)
	default:
		panic(fmt.Sprintf("season: unknown stat %q", string(s)))
	}
}

// Label converts an ending year to the "YYYY-YY" season id, 2023 -> "2022-23".
func Label(endYear int) string {
	return fmt.Sprintf("%d-%02d", endYear-1, endYear%100)
}

// EndYear is the inverse of Label.
func EndYear(seasonID string) (int, error) {
	seasonID = strings.TrimSpace(seasonID)
	start, suffix, ok := strings.Cut(seasonID, "-")
	if !ok || len(start) != 4 || len(suffix) != 2 {
		return 0, fmt.Errorf("invalid season id %q", seasonID)
	}
	startYear, err := strconv.Atoi(start)
	if err != nil {
		return 0, fmt.Errorf("invalid season id %q: %w", seasonID, err)
	}
	endYear := startYear + 1
	if Label(endYear) != seasonID {
		return 0, fmt.Errorf("invalid season id %q", seasonID)
	}
	return endYear, nil
}
