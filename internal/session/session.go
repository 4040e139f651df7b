// Package session holds the identity currently signed in on this device.
//
// The session record lives in its own store collection, separate from the
// identity directory. It expires a fixed time after sign-in; an expired or
// unreadable record is wiped on the next read.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/oryn/internal/auth"
	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/identities"
	"github.com/dmitrijs2005/oryn/internal/store"
	"github.com/dmitrijs2005/oryn/internal/validate"
)

// VoteLookup reports which contestant an identity voted for.
type VoteLookup interface {
	VoteOf(ctx context.Context, identityID string) (string, bool)
}

type Manager struct {
	st         *store.Store
	identities identities.Repository
	votes      VoteLookup
	admins     auth.AllowList
	ttl        time.Duration
	now        func() time.Time
	log        logging.Logger
}

type Option func(*Manager)

// WithTTL sets how long a session stays valid after sign-in. Non-positive
// values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(st *store.Store, ids identities.Repository, votes VoteLookup, admins auth.AllowList, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		st:         st,
		identities: ids,
		votes:      votes,
		admins:     admins,
		ttl:        common.DefaultSessionTTL,
		now:        time.Now,
		log:        log.With("component", "session"),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// SignIn builds the identity for claim, records it in the identity directory
// and makes it the current session.
func (m *Manager) SignIn(ctx context.Context, claim models.Claim) (*models.Identity, error) {
	if err := validate.Struct(claim); err != nil {
		return nil, err
	}

	identity := models.Identity{
		ID:        claim.Subject,
		Name:      claim.Name,
		Email:     claim.Email,
		Picture:   claim.Picture,
		IsAdmin:   m.admins.Contains(claim.Email),
		LoginTime: m.now().UTC(),
	}
	if prev, ok := m.identities.Get(ctx, identity.ID); ok {
		identity.HasRated = prev.HasRated
	}
	if contestantID, ok := m.votes.VoteOf(ctx, identity.ID); ok {
		identity.VotedFor = contestantID
	}

	if err := m.Refresh(ctx, &identity); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "signed in", "identity", identity.ID, "admin", identity.IsAdmin)
	return &identity, nil
}

// Current returns the signed-in identity.
func (m *Manager) Current(ctx context.Context) (*models.Identity, bool) {
	identity := store.Load(ctx, m.st, store.KeySession, store.Empty[*models.Identity]())
	if identity == nil || identity.ID == "" {
		m.wipe(ctx)
		return nil, false
	}

	if m.now().Sub(identity.LoginTime) > m.ttl {
		m.log.Info(ctx, "session expired", "identity", identity.ID)
		m.wipe(ctx)
		return nil, false
	}

	return identity, true
}

// SignOut clears the current session. The identity directory is unchanged.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.st.Delete(ctx, store.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Refresh persists identity both in the directory and as the current
// session. LoginTime is left unchanged.
func (m *Manager) Refresh(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		return common.ErrNotSignedIn
	}
	if err := m.identities.Upsert(ctx, *identity); err != nil {
		return err
	}
	if err := store.Save(ctx, m.st, store.KeySession, identity); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (m *Manager) wipe(ctx context.Context) {
	if err := m.st.Delete(ctx, store.KeySession); err != nil {
		m.log.Error(ctx, "failed to clear session", "error", err)
	}
}
