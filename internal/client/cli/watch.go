package cli

import (
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
)

// watch returns a store listener that prints changes to the open auction
// and newly arrived notifications while the user sits at the prompt.
// Listeners are called one at a time, so the closure state needs no lock.
func (a *App) watch() store.Listener {
	var (
		seen       models.Auction
		lastNotice string
	)
	if cur := a.store.State().Auctions.Current; cur != nil {
		seen = *cur
	}
	if items := a.store.State().Notifications.Items; len(items) > 0 {
		lastNotice = items[0].ID
	}

	return func(st store.State) {
		if cur := st.Auctions.Current; cur != nil {
			if cur.ID == seen.ID {
				if cur.TotalBids > seen.TotalBids || cur.CurrentPrice > seen.CurrentPrice {
					fmt.Fprintf(a.out, "\n[%s] new bid: %s (%d bids)\n", cur.ID, money(cur.CurrentPrice), cur.TotalBids)
				}
				if cur.Status != seen.Status && seen.Status != "" {
					fmt.Fprintf(a.out, "\n[%s] auction is now %s\n", cur.ID, cur.Status)
				}
			}
			seen = *cur
		} else {
			seen = models.Auction{}
		}

		if items := st.Notifications.Items; len(items) > 0 && items[0].ID != lastNotice {
			n := items[0]
			lastNotice = n.ID
			if !n.IsRead {
				fmt.Fprintf(a.out, "\n* %s: %s\n", n.Title, n.Message)
			}
		}
	}
}
