package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carbid/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Auctions(ctx context.Context, scope string) error
	Show(ctx context.Context, id string) error
	Leave(ctx context.Context) error
	Bid(ctx context.Context, amount string) error
	Bids(ctx context.Context) error
	Wishlist(ctx context.Context, action, id string) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, id string) error
	ReadAll(ctx context.Context) error
	Cars(ctx context.Context, scope string) error
	Sell(ctx context.Context) error
	Payments(ctx context.Context) error
	Pay(ctx context.Context, auctionID, amount string) error
}

const (
	helpGuest = "Available commands: register, login, auctions [all|live|upcoming], show <id>, leave, exit"
	helpUser  = "Available commands: auctions [all|live|upcoming|mine], show <id>, leave, bid <amount>, bids, " +
		"wishlist [add|remove|check|clear] [id], notifications, read <id>, readall, cars [approved|mine], " +
		"sell, payments, pay <auctionId> <amount>, profile, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the carbid CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// Unknown commands and missing arguments are reported back to the user.
// The loop exits on scanner EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed with the message the
// backend sent, when there is one, and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("carbid %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "auctions", "ls":
			err = a.Auctions(ctx, arg(args, 0))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			err = a.Show(ctx, args[0])

		case "leave":
			err = a.Leave(ctx)

		case "bid":
			if len(args) == 0 {
				printlnFn("Usage: bid <amount>")
				continue
			}
			err = a.Bid(ctx, args[0])

		case "bids":
			err = a.Bids(ctx)

		case "wishlist", "wl":
			err = a.Wishlist(ctx, arg(args, 0), arg(args, 1))

		case "notifications", "n":
			err = a.Notifications(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			err = a.Read(ctx, args[0])

		case "readall":
			err = a.ReadAll(ctx)

		case "cars":
			err = a.Cars(ctx, arg(args, 0))

		case "sell":
			err = a.Sell(ctx)

		case "payments":
			err = a.Payments(ctx)

		case "pay":
			if len(args) < 2 {
				printlnFn("Usage: pay <auctionId> <amount>")
				continue
			}
			err = a.Pay(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", api.Message(err))
		}
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
