// Package cli provides the interactive carbid command-line client.
//
// It wires configuration, the session repository, the HTTP API client, the
// push channel, the client state store and the services, then runs a REPL
// over them. Typical flow: restore the saved session, connect the push
// channel, and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout, profile
//   - Browse auctions (all, live, upcoming, mine) and open one to follow
//     its bids live
//   - Place bids, list own bids
//   - Wishlist and notifications
//   - Sell a car (car plus auction in one step), payments
//
// Output is rendered from store snapshots. The REPL is started via
// App.Run(ctx), which blocks until the user exits.
package cli
