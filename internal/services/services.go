// Package services contains the application services behind the CLI: voting,
// gift purchases, ratings and the administrator console. Services own the
// access rules (signed in, privileged) and leave storage to the repositories.
package services

import (
	"context"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/models"
)

// SessionRefresher persists changes to the signed-in identity.
type SessionRefresher interface {
	Refresh(ctx context.Context, identity *models.Identity) error
}

// AuditLog records and lists privileged mutations.
type AuditLog interface {
	Record(ctx context.Context, actorID, actorName, action, target string) error
	List(ctx context.Context) []models.AuditEntry
}

func requireIdentity(identity *models.Identity) error {
	if identity == nil || identity.ID == "" {
		return common.ErrNotSignedIn
	}
	return nil
}

func requireAdmin(identity *models.Identity) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if !identity.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}
