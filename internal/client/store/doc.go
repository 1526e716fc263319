// Package store is the client-side state cache.
//
// State is split into slices (auth, auctions, bids, wishlist,
// notifications). Every slice keeps the resolved data, the last error, and
// a per-operation request status (idle, loading, succeeded, failed), all
// retained independently.
//
// All mutations go through Store methods. Each one runs to completion under
// a single mutex against a private copy of the state which is then
// committed, so a push event and a resolved fetch never interleave inside
// one update. Subscribers receive immutable snapshots in commit order.
//
// Auctions follow a merge-not-replace rule: a full fetch replaces the
// record, while push events only touch the fields they name, on every
// cached copy of the auction.
package store
