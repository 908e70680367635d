package metric

import "testing"

func TestTrueShootingPct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pts, fga, fta float64
		want          float64
	}{
		{name: "no attempts", want: 0},
		{name: "reference", pts: 50, fga: 20, fta: 10, want: 102.5},
		{name: "free throws only", pts: 10, fta: 10, want: Round(100*10/(2*4.4), 1)},
		{name: "typical", pts: 2000, fga: 1500, fta: 500, want: 58.1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TrueShootingPct(tc.pts, tc.fga, tc.fta); got != tc.want {
				t.Fatalf("TrueShootingPct(%v,%v,%v)=%v, want %v", tc.pts, tc.fga, tc.fta, got, tc.want)
			}
		})
	}
}

func TestEfficiencyRating(t *testing.T) {
	t.Parallel()

	if got := EfficiencyRating(BoxTotals{FGM: 100, AST: 20}); got != 0 {
		t.Fatalf("expected 0 for zero minutes, got %v", got)
	}

	box := BoxTotals{
		Minutes: 48,
		FGM:     10,
		FG3M:    2,
		FTM:     4,
		AST:     6,
		STL:     2,
		BLK:     2,
		OREB:    5,
		DREB:    10,
		PF:      2,
		TOV:     3,
	}
	// 23.5 + 1 + 2 + 3 + 1 + 1 + 2 + 3 - 1 - 3
	if got := EfficiencyRating(box); got != 32.5 {
		t.Fatalf("EfficiencyRating=%v, want 32.5", got)
	}

	withAttempts := box
	withAttempts.FGA = 500
	withAttempts.FTA = 300
	if got := EfficiencyRating(withAttempts); got != 32.5 {
		t.Fatalf("attempts must not change the rating, got %v", got)
	}
}

func TestPctAndPerGame(t *testing.T) {
	t.Parallel()

	if got := Pct(1, 3); got != 33.3 {
		t.Fatalf("Pct(1,3)=%v", got)
	}
	if got := Pct(5, 0); got != 0 {
		t.Fatalf("Pct(5,0)=%v", got)
	}
	if got := PerGame(10, 0); got != 10 {
		t.Fatalf("PerGame(10,0)=%v", got)
	}
	if got := PerGame(0, 0); got != 0 {
		t.Fatalf("PerGame(0,0)=%v", got)
	}
	if got := PerGame(20, 3); got != 6.67 {
		t.Fatalf("PerGame(20,3)=%v", got)
	}
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	if got := Round(2.5, 0); got != 3 {
		t.Fatalf("Round(2.5,0)=%v", got)
	}
	if got := Round(-2.5, 0); got != -3 {
		t.Fatalf("Round(-2.5,0)=%v", got)
	}
	if Round(1.234, 2) != -Round(-1.234, 2) {
		t.Fatalf("rounding must be symmetric")
	}
}
