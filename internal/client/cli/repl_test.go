package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/carbid/internal/client/api"
)

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }
func (f *fakeExec) Auctions(_ context.Context, scope string) error {
	return f.record("auctions " + scope)
}
func (f *fakeExec) Show(_ context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Leave(context.Context) error             { return f.record("leave") }
func (f *fakeExec) Bid(_ context.Context, amount string) error {
	return f.record("bid " + amount)
}
func (f *fakeExec) Bids(context.Context) error { return f.record("bids") }
func (f *fakeExec) Wishlist(_ context.Context, action, id string) error {
	return f.record(strings.TrimSpace("wishlist " + action + " " + id))
}
func (f *fakeExec) Notifications(context.Context) error     { return f.record("notifications") }
func (f *fakeExec) Read(_ context.Context, id string) error { return f.record("read " + id) }
func (f *fakeExec) ReadAll(context.Context) error           { return f.record("readall") }
func (f *fakeExec) Cars(_ context.Context, scope string) error {
	return f.record("cars " + scope)
}
func (f *fakeExec) Sell(context.Context) error     { return f.record("sell") }
func (f *fakeExec) Payments(context.Context) error { return f.record("payments") }
func (f *fakeExec) Pay(_ context.Context, auctionID, amount string) error {
	return f.record("pay " + auctionID + " " + amount)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"login",
		"auctions live",
		"ls",
		"show A1",
		"bid 1200",
		"bids",
		"wishlist add A1",
		"wl",
		"notifications",
		"read n1",
		"readall",
		"cars mine",
		"sell",
		"payments",
		"pay A1 1200",
		"profile",
		"leave",
		"register",
		"logout",
		"exit",
		"bids",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login",
		"auctions live",
		"auctions ",
		"show A1",
		"bid 1200",
		"bids",
		"wishlist add A1",
		"wishlist",
		"notifications",
		"read n1",
		"readall",
		"cars mine",
		"sell",
		"payments",
		"pay A1 1200",
		"profile",
		"leave",
		"register",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("show\nbid\nread\npay A1\nfoobar\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Usage: show <id>")
	assert.Contains(t, out, "Usage: bid <amount>")
	assert.Contains(t, out, "Usage: read <id>")
	assert.Contains(t, out, "Usage: pay <auctionId> <amount>")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("help\nlogin\nhelp\n")
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(input))

	assert.Contains(t, *lines, helpGuest)
	assert.Contains(t, *lines, helpUser)
}

func TestRunREPL_PrintsBackendMessage(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{err: fmt.Errorf("place bid: %w", &api.Error{StatusCode: 400, Message: "Auction is not active"})}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("bid 5\n")))

	assert.Contains(t, *lines, "Error: Auction is not active")
}

func TestRunREPL_PrintsPlainError(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("bids\n")))

	assert.Contains(t, *lines, "Error: boom")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silencePrintln(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("bids\n")))
	assert.Empty(t, exec.calls)
}
