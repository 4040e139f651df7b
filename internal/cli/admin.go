package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/oryn/internal/common"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) AddContestant(ctx context.Context, name string) error {
	c, err := a.admin.AddContestant(ctx, a.identity, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s with id %s\n", c.Name, c.ID)
	return nil
}

func (a *App) RemoveContestant(ctx context.Context, id string) error {
	removed, err := a.admin.RemoveContestant(ctx, a.identity, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintf(a.out, "No contestant with id %s\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Removed %s\n", id)
	return nil
}

func (a *App) AdjustTally(ctx context.Context, id, delta string) error {
	n, err := strconv.Atoi(delta)
	if err != nil {
		return fmt.Errorf("%w: delta must be an integer", common.ErrInvalidInput)
	}

	found, err := a.admin.AdjustTally(ctx, a.identity, id, n)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(a.out, "No contestant with id %s\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Adjusted %s by %+d\n", id, n)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	list, err := a.admin.Identities(ctx, a.identity)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tADMIN\tVOTED\tLAST LOGIN")
	for _, u := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\n", u.ID, u.Name, u.Email, u.IsAdmin, u.VotedFor, u.LoginTime.Format(timeLayout))
	}
	return tw.Flush()
}

func (a *App) Transactions(ctx context.Context) error {
	list, err := a.admin.Transactions(ctx, a.identity)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tPACKAGE\tSTARS\tVOTES\tSTATUS\tTIME")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n", t.ID, t.UserName, t.PackageID, t.Stars, t.Votes, t.Status, t.Timestamp.Format(timeLayout))
	}
	return tw.Flush()
}

func (a *App) Ratings(ctx context.Context) error {
	list, err := a.admin.Ratings(ctx, a.identity)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No ratings yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tSTARS\tTIME")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.UserName, r.Stars, r.Timestamp.Format(timeLayout))
	}
	return tw.Flush()
}

func (a *App) Audit(ctx context.Context) error {
	list, err := a.admin.Audit(ctx, a.identity)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Audit log is empty.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tACTOR\tACTION\tTARGET")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Timestamp.Format(timeLayout), e.ActorName, e.Action, e.Target)
	}
	return tw.Flush()
}
