// This file defines the voting service: casting the one vote an identity is
// allowed and reading the current standings.
package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/contestants"
)

// Voter is the subset of the vote ledger the service needs.
type Voter interface {
	CastVote(ctx context.Context, identityID, contestantID string) (bool, error)
	VoteOf(ctx context.Context, identityID string) (string, bool)
}

type VoteService interface {
	// Vote casts identity's vote. It returns false when the identity has
	// already voted; identity.VotedFor is updated either way.
	Vote(ctx context.Context, identity *models.Identity, contestantID string) (bool, error)

	// Standings returns contestants by descending tally. Ties keep roster order.
	Standings(ctx context.Context) []models.Contestant
}

type voteService struct {
	ledger   Voter
	roster   contestants.Repository
	sessions SessionRefresher
	log      logging.Logger
}

func NewVoteService(ledger Voter, roster contestants.Repository, sessions SessionRefresher, log logging.Logger) VoteService {
	return &voteService{ledger: ledger, roster: roster, sessions: sessions, log: log}
}

func (s *voteService) Vote(ctx context.Context, identity *models.Identity, contestantID string) (bool, error) {
	if err := requireIdentity(identity); err != nil {
		return false, err
	}

	ok, err := s.ledger.CastVote(ctx, identity.ID, contestantID)
	if err != nil {
		return false, err
	}

	votedFor, _ := s.ledger.VoteOf(ctx, identity.ID)
	if identity.VotedFor != votedFor {
		identity.VotedFor = votedFor
		if err := s.sessions.Refresh(ctx, identity); err != nil {
			s.log.Error(ctx, "failed to refresh session after vote", "identity", identity.ID, "error", err)
		}
	}
	return ok, nil
}

func (s *voteService) Standings(ctx context.Context) []models.Contestant {
	list := s.roster.List(ctx)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Votes > list[j].Votes })
	return list
}
