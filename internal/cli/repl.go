package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/oryn/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	List(ctx context.Context) error
	Vote(ctx context.Context, contestantID string) error
	Packages(ctx context.Context) error
	Gift(ctx context.Context, packageID string) error
	Rate(ctx context.Context, stars string) error
	Stats(ctx context.Context) error

	AddContestant(ctx context.Context, name string) error
	RemoveContestant(ctx context.Context, id string) error
	AdjustTally(ctx context.Context, id, delta string) error
	Users(ctx context.Context) error
	Transactions(ctx context.Context) error
	Ratings(ctx context.Context) error
	Audit(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login [token], list, packages, stats, exit"
	helpUser  = "Available commands: whoami, (l)ist, vote <id>, packages, gift <package>, rate <1-5>, stats, logout, exit"
	helpAdmin = "Admin commands: add <name>, remove <id>, adjust <id> <delta>, users, txs, ratings, audit"
)

// runREPL starts the read–eval–print loop.
//
// It reads a line from the scanner, parses the first token as the command and
// dispatches to methods on a; the remaining tokens are arguments. Commands
// that need a missing argument print their usage. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("oryn %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpGuest)
			}

		case "login":
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			err = a.Login(ctx, token)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "vote":
			if len(args) != 1 {
				printlnFn("Usage: vote <id>")
				continue
			}
			err = a.Vote(ctx, args[0])

		case "packages":
			err = a.Packages(ctx)

		case "gift":
			if len(args) != 1 {
				printlnFn("Usage: gift <package>")
				continue
			}
			err = a.Gift(ctx, args[0])

		case "rate":
			if len(args) != 1 {
				printlnFn("Usage: rate <1-5>")
				continue
			}
			err = a.Rate(ctx, args[0])

		case "stats":
			err = a.Stats(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <name>")
				continue
			}
			err = a.AddContestant(ctx, strings.Join(args, " "))

		case "remove":
			if len(args) != 1 {
				printlnFn("Usage: remove <id>")
				continue
			}
			err = a.RemoveContestant(ctx, args[0])

		case "adjust":
			if len(args) != 2 {
				printlnFn("Usage: adjust <id> <delta>")
				continue
			}
			err = a.AdjustTally(ctx, args[0], args[1])

		case "users":
			err = a.Users(ctx)

		case "txs":
			err = a.Transactions(ctx)

		case "ratings":
			err = a.Ratings(ctx)

		case "audit":
			err = a.Audit(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describe(err))
		}
	}
}

// describe turns a handler error into a user-facing message.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrNotSignedIn):
		return "Please login first."
	case errors.Is(err, common.ErrForbidden):
		return "This command requires administrator access."
	case errors.Is(err, common.ErrTokenExpired):
		return "Identity token has expired, please sign in again."
	}
	return "Error: " + err.Error()
}
