package cli

import (
	"context"
	"errors"
	"fmt"
)

var errNoAuctionOpen = errors.New("open an auction first with 'show <id>'")

// Bid places a bid on the open auction. An amount that does not parse is
// sent to validation as zero, which rejects it with the usual message.
func (a *App) Bid(ctx context.Context, amount string) error {
	id := a.store.State().Auctions.Viewing
	if id == "" {
		return errNoAuctionOpen
	}

	v, err := parseAmount(amount)
	if err != nil {
		v = 0
	}

	bid, err := a.bidService.Place(ctx, id, v)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Bid of %s placed.\n", money(bid.Amount))
	if cur := a.store.State().Auctions.Current; cur != nil {
		fmt.Fprintf(a.out, "Current price: %s (%d bids)\n", money(cur.MinimumBid()), cur.TotalBids)
	}
	return nil
}

// Bids prints the signed-in user's bids.
func (a *App) Bids(ctx context.Context) error {
	if err := a.bidService.Mine(ctx); err != nil {
		return err
	}
	renderMyBids(a.out, a.store.State().Bids.Mine)
	return nil
}
