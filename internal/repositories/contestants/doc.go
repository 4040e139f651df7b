// Package contestants provides the persistence façade for the editors
// competing in the tournament.
//
// # Overview
//
// The roster is one collection in the store, kept in insertion order. Until
// it is first written, List returns the built-in seed of four editors
// (models.DefaultContestants). Every mutation rewrites the whole collection.
//
// # Tallies
//
// A tally never drops below zero: AdjustTally clamps at 0. Tallies change
// only through the vote ledger (+1 per vote) or an administrator adjustment.
//
// Typical Usage
//
//	repo := contestants.NewRepository(st)
//	list := repo.List(ctx)
//	_ = repo.Add(ctx, models.Contestant{ID: id, Name: "New Editor"})
//	found, _ := repo.AdjustTally(ctx, id, -3)
//	removed, _ := repo.Remove(ctx, id)
package contestants
