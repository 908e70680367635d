package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonService_Symmetry(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(newPlayerService(leagueRows()))
	ctx := context.Background()

	ab, err := svc.Compare(ctx, "Stephen Curry", "Nikola Jokic")
	require.NoError(t, err)
	ba, err := svc.Compare(ctx, "Nikola Jokic", "Stephen Curry")
	require.NoError(t, err)

	assert.Equal(t, "Stephen Curry", ab.Player1)
	assert.Equal(t, "Nikola Jokic", ab.Player2)
	require.Len(t, ab.Totals, 21)
	require.Len(t, ab.Averages, 18)
	require.Len(t, ab.Advanced, 2)

	groups := [][2][]StatComparison{{ab.Totals, ba.Totals}, {ab.Averages, ba.Averages}, {ab.Advanced, ba.Advanced}}
	for _, g := range groups {
		require.Equal(t, len(g[0]), len(g[1]))
		for i := range g[0] {
			assert.Equal(t, g[0][i].Key, g[1][i].Key)
			assert.Equal(t, g[0][i].Difference, -g[1][i].Difference, "key %s", g[0][i].Key)
			assert.Equal(t, g[0][i].Player1, g[1][i].Player2)
		}
	}

	pts := ab.Totals[3]
	assert.Equal(t, "PTS", pts.Key)
	assert.Equal(t, 3278.0, pts.Player1)
	assert.Equal(t, 3694.0, pts.Player2)
	assert.Equal(t, -416.0, pts.Difference)
}

func TestComparisonService_EachSideResolvesIndependently(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(newPlayerService(leagueRows()))
	_, err := svc.Compare(context.Background(), "Stephen Curry", "Nobody Here")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Nobody Here", nf.ResourceID)

	_, err = svc.Compare(context.Background(), "Ghost", "Stephen Curry")
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Ghost", nf.ResourceID)
}

func TestComparisonService_BothMissingReportsFirst(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(newPlayerService(leagueRows()))
	_, err := svc.Compare(context.Background(), "Ghost One", "Ghost Two")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Ghost One", nf.ResourceID)
}
