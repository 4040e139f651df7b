// This file defines the administrator console. Every method requires a
// privileged identity. Mutations of the roster are recorded in the audit log
// after they succeed; the read-only views are not audited.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/contestants"
	"github.com/dmitrijs2005/oryn/internal/repositories/identities"
	"github.com/dmitrijs2005/oryn/internal/repositories/ratings"
	"github.com/dmitrijs2005/oryn/internal/repositories/transactions"
	"github.com/google/uuid"
)

// Audit actions.
const (
	ActionAddContestant    = "add contestant"
	ActionRemoveContestant = "remove contestant"
	ActionAdjustTally      = "adjust tally"
)

type AdminService interface {
	AddContestant(ctx context.Context, actor *models.Identity, name string) (models.Contestant, error)
	// RemoveContestant reports whether the contestant existed.
	RemoveContestant(ctx context.Context, actor *models.Identity, id string) (bool, error)
	// AdjustTally adds delta to a tally, never going below zero, and reports
	// whether the contestant existed.
	AdjustTally(ctx context.Context, actor *models.Identity, id string, delta int) (bool, error)

	Contestants(ctx context.Context, actor *models.Identity) ([]models.Contestant, error)
	Identities(ctx context.Context, actor *models.Identity) ([]models.Identity, error)
	Transactions(ctx context.Context, actor *models.Identity) ([]models.Transaction, error)
	Ratings(ctx context.Context, actor *models.Identity) ([]models.Rating, error)
	Audit(ctx context.Context, actor *models.Identity) ([]models.AuditEntry, error)
}

// AdminRepos groups the repositories the console reads and writes.
type AdminRepos struct {
	Contestants  contestants.Repository
	Identities   identities.Repository
	Transactions transactions.Repository
	Ratings      ratings.Repository
}

type adminService struct {
	repos AdminRepos
	audit AuditLog
	log   logging.Logger
}

func NewAdminService(repos AdminRepos, audit AuditLog, log logging.Logger) AdminService {
	return &adminService{repos: repos, audit: audit, log: log}
}

// record writes an audit entry. A failure is logged but does not undo or
// fail the mutation that already happened.
func (s *adminService) record(ctx context.Context, actor *models.Identity, action, target string) {
	if err := s.audit.Record(ctx, actor.ID, actor.Name, action, target); err != nil {
		s.log.Error(ctx, "failed to record audit entry", "actor", actor.ID, "action", action, "target", target, "error", err)
	}
}

func (s *adminService) AddContestant(ctx context.Context, actor *models.Identity, name string) (models.Contestant, error) {
	if err := requireAdmin(actor); err != nil {
		return models.Contestant{}, err
	}

	name = strings.TrimSpace(name)
	c := models.Contestant{
		ID:        uuid.NewString(),
		Name:      name,
		Thumbnail: fmt.Sprintf("https://picsum.photos/seed/%s/600/400", url.PathEscape(name)),
		VideoURL:  "#",
	}
	if err := s.repos.Contestants.Add(ctx, c); err != nil {
		return models.Contestant{}, err
	}

	s.record(ctx, actor, ActionAddContestant, fmt.Sprintf("%s (%s)", c.Name, c.ID))
	return c, nil
}

func (s *adminService) RemoveContestant(ctx context.Context, actor *models.Identity, id string) (bool, error) {
	if err := requireAdmin(actor); err != nil {
		return false, err
	}

	removed, err := s.repos.Contestants.Remove(ctx, id)
	if err != nil || !removed {
		return false, err
	}

	s.record(ctx, actor, ActionRemoveContestant, id)
	return true, nil
}

func (s *adminService) AdjustTally(ctx context.Context, actor *models.Identity, id string, delta int) (bool, error) {
	if err := requireAdmin(actor); err != nil {
		return false, err
	}

	found, err := s.repos.Contestants.AdjustTally(ctx, id, delta)
	if err != nil || !found {
		return false, err
	}

	s.record(ctx, actor, ActionAdjustTally, fmt.Sprintf("%s %+d", id, delta))
	return true, nil
}

func (s *adminService) Contestants(ctx context.Context, actor *models.Identity) ([]models.Contestant, error) {
	return guarded(actor, func() []models.Contestant { return s.repos.Contestants.List(ctx) })
}

func (s *adminService) Identities(ctx context.Context, actor *models.Identity) ([]models.Identity, error) {
	return guarded(actor, func() []models.Identity { return s.repos.Identities.List(ctx) })
}

func (s *adminService) Transactions(ctx context.Context, actor *models.Identity) ([]models.Transaction, error) {
	return guarded(actor, func() []models.Transaction { return s.repos.Transactions.List(ctx) })
}

func (s *adminService) Ratings(ctx context.Context, actor *models.Identity) ([]models.Rating, error) {
	return guarded(actor, func() []models.Rating { return s.repos.Ratings.List(ctx) })
}

func (s *adminService) Audit(ctx context.Context, actor *models.Identity) ([]models.AuditEntry, error) {
	return guarded(actor, func() []models.AuditEntry { return s.audit.List(ctx) })
}

func guarded[T any](actor *models.Identity, list func() []T) ([]T, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return list(), nil
}

