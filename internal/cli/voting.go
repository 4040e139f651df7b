package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/oryn/internal/common"
)

// List prints the standings. The caller's own pick is marked with '*'.
func (a *App) List(ctx context.Context) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tVOTES")
	for i, c := range a.votes.Standings(ctx) {
		mark := ""
		if a.identity != nil && a.identity.VotedFor == c.ID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%d\n", i+1, mark, c.ID, c.Name, c.Votes)
	}
	return tw.Flush()
}

func (a *App) Vote(ctx context.Context, contestantID string) error {
	ok, err := a.votes.Vote(ctx, a.identity, contestantID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "You have already voted for %s\n", a.identity.VotedFor)
		return nil
	}
	fmt.Fprintf(a.out, "Vote recorded for %s\n", contestantID)
	return nil
}

func (a *App) Packages(ctx context.Context) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTARS\tVOTES\t")
	for _, p := range a.gifts.Packages() {
		tag := ""
		if p.Highlighted {
			tag = "popular"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.Stars, p.Votes, tag)
	}
	return tw.Flush()
}

func (a *App) Gift(ctx context.Context, packageID string) error {
	tx, err := a.gifts.Purchase(ctx, a.identity, packageID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Purchase %s recorded: %d stars for %d votes (pending confirmation)\n", tx.ID, tx.Stars, tx.Votes)
	return nil
}

func (a *App) Rate(ctx context.Context, stars string) error {
	n, err := strconv.Atoi(stars)
	if err != nil {
		return fmt.Errorf("%w: rating must be a number from 1 to 5", common.ErrInvalidInput)
	}
	if _, err := a.ratings.Submit(ctx, a.identity, n); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thanks for your feedback!")
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	count, mean := a.ratings.Stats(ctx)
	fmt.Fprintf(a.out, "Average rating %.1f from %d ratings\n", mean, count)
	return nil
}
