package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/oryn/internal/audit"
	"github.com/dmitrijs2005/oryn/internal/ledger"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/contestants"
	"github.com/dmitrijs2005/oryn/internal/repositories/identities"
	"github.com/dmitrijs2005/oryn/internal/repositories/ratings"
	"github.com/dmitrijs2005/oryn/internal/repositories/transactions"
	"github.com/dmitrijs2005/oryn/internal/store"
)

type fakeSessions struct {
	refreshed []models.Identity
	err       error
}

func (f *fakeSessions) Refresh(_ context.Context, identity *models.Identity) error {
	f.refreshed = append(f.refreshed, *identity)
	return f.err
}

type failingAudit struct{}

func (failingAudit) Record(context.Context, string, string, string, string) error {
	return errors.New("disk full")
}
func (failingAudit) List(context.Context) []models.AuditEntry { return nil }

var fixedNow = func() time.Time { return time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC) }

type deps struct {
	st       *store.Store
	roster   *contestants.StoreRepository
	ids      *identities.StoreRepository
	txs      *transactions.StoreRepository
	ratings  *ratings.StoreRepository
	audit    *audit.Log
	ledger   *ledger.Ledger
	sessions *fakeSessions
}

func newDeps() *deps {
	st := store.New(store.NewMemory(), logging.Nop())
	return &deps{
		st:       st,
		roster:   contestants.NewRepository(st),
		ids:      identities.NewRepository(st),
		txs:      transactions.NewRepository(st),
		ratings:  ratings.NewRepository(st),
		audit:    audit.New(st, audit.WithClock(fixedNow)),
		ledger:   ledger.New(st, logging.Nop()),
		sessions: &fakeSessions{},
	}
}

func (d *deps) admin() AdminService {
	return NewAdminService(AdminRepos{
		Contestants:  d.roster,
		Identities:   d.ids,
		Transactions: d.txs,
		Ratings:      d.ratings,
	}, d.audit, logging.Nop())
}

func root() *models.Identity {
	return &models.Identity{ID: "a-1", Name: "Root", Email: "root@oryn.io", IsAdmin: true}
}

func user() *models.Identity {
	return &models.Identity{ID: "u-1", Name: "Ada", Email: "ada@oryn.io"}
}
