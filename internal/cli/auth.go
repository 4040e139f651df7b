package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/oryn/internal/auth"
	"github.com/dmitrijs2005/oryn/internal/common"
)

// Login signs in with an identity token. When token is empty it is read from
// the terminal without echo.
func (a *App) Login(ctx context.Context, token string) error {
	if token == "" {
		var err error
		token, err = GetSecret(a.out, "Paste identity token")
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("empty identity token")
	}

	claim, err := auth.ParseIdentityToken(token, []byte(a.config.IdentityTokenSecret))
	if err != nil {
		a.log.Warn(ctx, "identity token rejected", "error", err)
		return err
	}

	identity, err := a.sessions.SignIn(ctx, claim)
	if err != nil {
		return err
	}
	a.identity = identity

	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", identity.Name, identity.Email)
	if identity.IsAdmin {
		fmt.Fprintln(a.out, "Administrator access granted")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.identity == nil {
		return common.ErrNotSignedIn
	}
	if err := a.sessions.SignOut(ctx); err != nil {
		return err
	}
	a.identity = nil
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.identity == nil {
		return common.ErrNotSignedIn
	}

	id := a.identity
	fmt.Fprintf(a.out, "%s <%s> id=%s admin=%t\n", id.Name, id.Email, id.ID, id.IsAdmin)
	if id.VotedFor != "" {
		fmt.Fprintf(a.out, "Voted for: %s\n", id.VotedFor)
	} else {
		fmt.Fprintln(a.out, "Not voted yet")
	}
	fmt.Fprintf(a.out, "Signed in at %s\n", id.LoginTime.Format("2006-01-02 15:04:05 MST"))
	return nil
}
