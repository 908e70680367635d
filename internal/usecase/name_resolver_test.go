package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "LeBron James", "  lebron   JAMES ", "Jokić", "De'Aaron Fox", "a b c"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
	if got := Normalize("Stephen Curry"); got != "stephencurry" {
		t.Fatalf("Normalize(Stephen Curry)=%q", got)
	}
}

func TestNameResolver_CaseAndSpaceVariants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := NewNameResolver(newRepo(leagueRows()), nil)

	base, err := resolver.Resolve(ctx, "Kevin Durant")
	require.NoError(t, err)
	require.True(t, base.Matched())
	require.Len(t, base.Rows, 3)

	for _, variant := range []string{"kevin durant", "KEVINDURANT", " Kevin  Durant", "kEvIn DuRaNt"} {
		got, err := resolver.Resolve(ctx, variant)
		require.NoError(t, err)
		assert.Equal(t, base.Rows, got.Rows, "variant %q", variant)
		assert.Empty(t, got.Suggestions)
	}
}

func TestNameResolver_SuggestionsInEncounterOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := NewNameResolver(newRepo(leagueRows()), nil)

	got, err := resolver.Resolve(ctx, "n")
	require.NoError(t, err)
	assert.False(t, got.Matched())
	assert.Equal(t, []string{"Stephen Curry", "Kevin Durant", "Draymond Green", "Nikola Jokic"}, got.Suggestions)

	got, err = resolver.Resolve(ctx, "curr")
	require.NoError(t, err)
	assert.Equal(t, []string{"Stephen Curry"}, got.Suggestions)

	got, err = resolver.Resolve(ctx, "Michael Jordan")
	require.NoError(t, err)
	assert.False(t, got.Matched())
	assert.Empty(t, got.Suggestions)
}

func TestNameResolver_MergesSpellingsInDatasetOrder(t *testing.T) {
	t.Parallel()

	rows := leagueRows()
	alt := row(9, "LeBron James", "2003-04", "CLE", 79, 1654)
	alt2 := row(9, "Lebron James", "2004-05", "CLE", 80, 2175)
	rows = append([]season.Row{alt}, append(rows, alt2)...)

	resolver := NewNameResolver(newRepo(rows), nil)
	got, err := resolver.Resolve(context.Background(), "lebronjames")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "2003-04", got.Rows[0].SeasonID)
	assert.Equal(t, "2004-05", got.Rows[1].SeasonID)
}

func TestNameResolver_RowsForCapsSuggestions(t *testing.T) {
	t.Parallel()

	var rows []season.Row
	for _, name := range []string{"Anthony Davis", "Anthony Edwards", "Anthony Black", "Anthony Gill", "Anthony Lamb", "Anthony Parker"} {
		rows = append(rows, row(1, name, "2022-23", "LAL", 10, 100))
	}
	resolver := NewNameResolver(newRepo(rows), nil)

	_, err := resolver.rowsFor(context.Background(), "anthony")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Player", nf.ResourceType)
	assert.Equal(t, "anthony", nf.ResourceID)
	assert.Equal(t, HintDidYouMean, nf.HintLabel)
	assert.Len(t, nf.Hint, 5)
	assert.Equal(t, "Anthony Davis", nf.Hint[0])
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = resolver.rowsFor(context.Background(), "zzz")
	require.True(t, errors.As(err, &nf))
	assert.Empty(t, nf.Hint)
}

func TestNameResolver_InjectedMemoIsUsedConcurrently(t *testing.T) {
	t.Parallel()

	memo := cache.NewMemo[string, string](0)
	resolver := NewNameResolver(newRepo(leagueRows()), memo)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := resolver.Resolve(context.Background(), "nikola jokic")
			if err != nil || len(res.Rows) != 2 {
				t.Errorf("unexpected resolution: %+v, %v", res, err)
			}
		}()
	}
	wg.Wait()

	v, ok := memo.Get("nikola jokic")
	require.True(t, ok)
	assert.Equal(t, "nikolajokic", v)
	// Four distinct dataset names plus the query.
	assert.Equal(t, 5, memo.Len())
}
