package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool
	err      error

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(ctx context.Context, token string) error {
	f.loggedIn = true
	return f.record("login " + token)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error   { return f.record("whoami") }
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list") }
func (f *fakeExec) Packages(ctx context.Context) error { return f.record("packages") }
func (f *fakeExec) Stats(ctx context.Context) error    { return f.record("stats") }
func (f *fakeExec) Vote(ctx context.Context, id string) error {
	return f.record("vote " + id)
}
func (f *fakeExec) Gift(ctx context.Context, id string) error {
	return f.record("gift " + id)
}
func (f *fakeExec) Rate(ctx context.Context, stars string) error {
	return f.record("rate " + stars)
}
func (f *fakeExec) AddContestant(ctx context.Context, name string) error {
	return f.record("add " + name)
}
func (f *fakeExec) RemoveContestant(ctx context.Context, id string) error {
	return f.record("remove " + id)
}
func (f *fakeExec) AdjustTally(ctx context.Context, id, delta string) error {
	return f.record("adjust " + id + " " + delta)
}
func (f *fakeExec) Users(ctx context.Context) error        { return f.record("users") }
func (f *fakeExec) Transactions(ctx context.Context) error { return f.record("txs") }
func (f *fakeExec) Ratings(ctx context.Context) error      { return f.record("ratings") }
func (f *fakeExec) Audit(ctx context.Context) error        { return f.record("audit") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec execIface, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_DispatchesWithArguments(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	run(exec,
		"login tok",
		"whoami",
		"l",
		"vote 2",
		"packages",
		"gift 3",
		"rate 5",
		"stats",
		"add Pixel Forge",
		"remove 4",
		"adjust 1 -10",
		"users",
		"txs",
		"ratings",
		"audit",
		"logout",
		"exit",
		"list",
	)

	assert.Equal(t, []string{
		"login tok", "whoami", "list", "vote 2", "packages", "gift 3", "rate 5", "stats",
		"add Pixel Forge", "remove 4", "adjust 1 -10", "users", "txs", "ratings", "audit", "logout",
	}, exec.calls)
}

func TestRunREPL_LoginWithoutTokenPrompts(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	run(exec, "login", "quit")

	assert.Equal(t, []string{"login "}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	run(exec, "vote", "gift", "rate", "add", "remove", "adjust 1", "foobar", "", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: vote <id>")
	assert.Contains(t, *out, "Usage: gift <package>")
	assert.Contains(t, *out, "Usage: rate <1-5>")
	assert.Contains(t, *out, "Usage: add <name>")
	assert.Contains(t, *out, "Usage: remove <id>")
	assert.Contains(t, *out, "Usage: adjust <id> <delta>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_HelpDependsOnRole(t *testing.T) {
	out := capturePrintln(t)
	run(&fakeExec{}, "help")
	assert.Contains(t, *out, helpGuest)
	assert.NotContains(t, *out, helpAdmin)

	out = capturePrintln(t)
	run(&fakeExec{loggedIn: true}, "help")
	assert.Contains(t, *out, helpUser)
	assert.NotContains(t, *out, helpAdmin)

	out = capturePrintln(t)
	run(&fakeExec{loggedIn: true, admin: true}, "help")
	assert.Contains(t, *out, helpUser)
	assert.Contains(t, *out, helpAdmin)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	out := capturePrintln(t)

	run(&fakeExec{err: common.ErrForbidden}, "users")
	assert.Contains(t, *out, "This command requires administrator access.")

	out = capturePrintln(t)
	run(&fakeExec{err: fmt.Errorf("wrap: %w", common.ErrNotSignedIn)}, "vote 1")
	assert.Contains(t, *out, "Please login first.")

	out = capturePrintln(t)
	run(&fakeExec{err: common.ErrTokenExpired}, "login x")
	assert.Contains(t, *out, "Identity token has expired, please sign in again.")

	out = capturePrintln(t)
	run(&fakeExec{err: common.ErrNotFound}, "vote 9")
	assert.Contains(t, *out, "Error: not found")
}
