package cli

import (
	"context"
	"fmt"
)

// Wishlist prints the wishlist, or with an action changes it. add, remove
// and check default to the open auction when id is empty.
func (a *App) Wishlist(ctx context.Context, action, id string) error {
	if action == "" || action == "list" {
		if err := a.wishlistService.Fetch(ctx); err != nil {
			return err
		}
		renderWishlist(a.out, a.store.State().Wishlist.Items)
		return nil
	}

	if action == "clear" {
		if err := a.wishlistService.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Wishlist cleared.")
		return nil
	}

	if id == "" {
		id = a.store.State().Auctions.Viewing
	}
	if id == "" {
		return fmt.Errorf("usage: wishlist %s <auctionId>", action)
	}

	switch action {
	case "add":
		if err := a.wishlistService.Add(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Auction %s added to your wishlist.\n", id)
	case "remove", "rm":
		if err := a.wishlistService.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Auction %s removed from your wishlist.\n", id)
	case "check":
		in, err := a.wishlistService.Check(ctx, id)
		if err != nil {
			return err
		}
		if in {
			fmt.Fprintf(a.out, "Auction %s is in your wishlist.\n", id)
		} else {
			fmt.Fprintf(a.out, "Auction %s is not in your wishlist.\n", id)
		}
	default:
		return fmt.Errorf("unknown wishlist action %q, want add, remove, check or clear", action)
	}
	return nil
}
