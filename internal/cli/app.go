package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/oryn/internal/audit"
	"github.com/dmitrijs2005/oryn/internal/auth"
	"github.com/dmitrijs2005/oryn/internal/config"
	"github.com/dmitrijs2005/oryn/internal/ledger"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/contestants"
	"github.com/dmitrijs2005/oryn/internal/repositories/identities"
	"github.com/dmitrijs2005/oryn/internal/repositories/ratings"
	"github.com/dmitrijs2005/oryn/internal/repositories/transactions"
	"github.com/dmitrijs2005/oryn/internal/services"
	"github.com/dmitrijs2005/oryn/internal/session"
	"github.com/dmitrijs2005/oryn/internal/store"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Manager
	votes    services.VoteService
	gifts    services.GiftService
	ratings  services.RatingService
	admin    services.AdminService
	identity *models.Identity
	out      io.Writer
}

// NewApp wires the repositories, the ledger and the services over st.
func NewApp(c *config.Config, st *store.Store, log logging.Logger) *App {
	return newApp(c, st, log, time.Now)
}

func newApp(c *config.Config, st *store.Store, log logging.Logger, now func() time.Time) *App {
	roster := contestants.NewRepository(st)
	ids := identities.NewRepository(st)
	txs := transactions.NewRepository(st)
	rs := ratings.NewRepository(st)

	admins := auth.NewAllowList(c.AdminEmails)
	if admins.Len() == 0 {
		log.Warn(context.Background(), "no administrator emails configured, admin commands are unavailable")
	}

	l := ledger.New(st, log)
	sessions := session.NewManager(st, ids, l, admins, log,
		session.WithTTL(c.SessionTTL), session.WithClock(now))
	auditLog := audit.New(st, audit.WithCapacity(c.AuditCapacity), audit.WithClock(now))

	return &App{
		config:   c,
		log:      log,
		sessions: sessions,
		votes:    services.NewVoteService(l, roster, sessions, log),
		gifts:    services.NewGiftService(txs, now, log),
		ratings:  services.NewRatingService(rs, sessions, now, log),
		admin: services.NewAdminService(services.AdminRepos{
			Contestants:  roster,
			Identities:   ids,
			Transactions: txs,
			Ratings:      rs,
		}, auditLog, log),
		out: os.Stdout,
	}
}

// Run restores the previous session, if still valid, and starts the REPL on
// stdin. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.run(ctx, os.Stdin)
}

func (a *App) run(ctx context.Context, in io.Reader) {
	fmt.Fprintln(a.out, "Welcome to the Oryn editor tournament (type 'help' for commands)")

	if identity, ok := a.sessions.Current(ctx); ok {
		a.identity = identity
		fmt.Fprintf(a.out, "Welcome back, %s\n", identity.Name)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(in))
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) isAdmin() bool {
	return a.identity != nil && a.identity.IsAdmin
}

func (a *App) getStatus() string {
	if a.identity == nil {
		return ""
	}
	if a.identity.IsAdmin {
		return fmt.Sprintf("(%s admin)", a.identity.Name)
	}
	return fmt.Sprintf("(%s)", a.identity.Name)
}
