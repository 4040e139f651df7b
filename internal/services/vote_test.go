package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVote_UpdatesIdentityAndSession(t *testing.T) {
	d := newDeps()
	ctx := context.Background()
	svc := NewVoteService(d.ledger, d.roster, d.sessions, logging.Nop())

	me := user()
	ok, err := svc.Vote(ctx, me, "3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", me.VotedFor)
	require.Len(t, d.sessions.refreshed, 1)
	assert.Equal(t, "3", d.sessions.refreshed[0].VotedFor)

	ok, err = svc.Vote(ctx, me, "1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "3", me.VotedFor)
	assert.Len(t, d.sessions.refreshed, 1)
}

func TestVote_StaleSessionIsCorrected(t *testing.T) {
	d := newDeps()
	ctx := context.Background()
	svc := NewVoteService(d.ledger, d.roster, d.sessions, logging.Nop())

	_, err := d.ledger.CastVote(ctx, "u-1", "2")
	require.NoError(t, err)

	me := user()
	ok, err := svc.Vote(ctx, me, "4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "2", me.VotedFor)
	assert.Len(t, d.sessions.refreshed, 1)
}

func TestVote_Errors(t *testing.T) {
	d := newDeps()
	ctx := context.Background()
	svc := NewVoteService(d.ledger, d.roster, d.sessions, logging.Nop())

	_, err := svc.Vote(ctx, nil, "1")
	require.ErrorIs(t, err, common.ErrNotSignedIn)

	_, err = svc.Vote(ctx, user(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, d.sessions.refreshed)
}

func TestStandings_SortedByTally(t *testing.T) {
	d := newDeps()
	svc := NewVoteService(d.ledger, d.roster, d.sessions, logging.Nop())

	got := svc.Standings(context.Background())
	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"3", "4", "1", "2"}, ids)
}
