package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultContestants_SeedOrderAndTallies(t *testing.T) {
	seed := DefaultContestants()
	require.Len(t, seed, 4)

	ids := make([]string, 0, len(seed))
	for _, c := range seed {
		ids = append(ids, c.ID)
		require.GreaterOrEqual(t, c.Votes, 0)
		require.NotEmpty(t, c.Name)
	}
	require.Equal(t, []string{"1", "2", "3", "4"}, ids)
	require.Equal(t, 124, seed[0].Votes)
	require.Equal(t, 89, seed[1].Votes)
}

func TestDefaultContestants_ReturnsFreshCopy(t *testing.T) {
	a := DefaultContestants()
	a[0].Votes = 9999

	b := DefaultContestants()
	require.Equal(t, 124, b[0].Votes)
}

func TestGiftPackages_PositiveStarsAndVotes(t *testing.T) {
	pkgs := GiftPackages()
	require.Len(t, pkgs, 4)
	for _, p := range pkgs {
		require.Positive(t, p.Stars, p.ID)
		require.Positive(t, p.Votes, p.ID)
	}
	require.True(t, pkgs[1].Highlighted)
}
