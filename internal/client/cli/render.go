package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
)

const timeLayout = "2006-01-02 15:04"

func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// countdown renders the time left as "1d 02h 03m 04s", or "Ended".
func countdown(d time.Duration) string {
	if d <= 0 {
		return "Ended"
	}
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	if days > 0 {
		return fmt.Sprintf("%dd %02dh %02dm %02ds", days, h, m, s)
	}
	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func renderAuctions(w io.Writer, list []models.Auction, now time.Time) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No auctions found.")
		return
	}
	tw := newTable(w, "ID", "TITLE", "STATUS", "PRICE", "BIDS", "TIME LEFT")
	for _, a := range list {
		left := "-"
		if a.Status != models.AuctionUpcoming {
			left = countdown(a.TimeLeft(now))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", a.ID, a.Title, a.Status, money(a.MinimumBid()), a.TotalBids, left)
	}
	_ = tw.Flush()
}

func renderAuction(w io.Writer, a models.Auction, bids store.BidsState, now time.Time) {
	fmt.Fprintf(w, "%s [%s]\n", a.Title, a.Status)
	if a.Car.Make != "" || a.Car.Model != "" {
		fmt.Fprintf(w, "Car:        %d %s %s\n", a.Car.Year, a.Car.Make, a.Car.Model)
	}
	if a.Description != "" {
		fmt.Fprintf(w, "            %s\n", a.Description)
	}
	if a.Seller.Username != "" {
		fmt.Fprintf(w, "Seller:     %s\n", a.Seller.Username)
	}
	fmt.Fprintf(w, "Start:      %s\n", money(a.StartingPrice))
	fmt.Fprintf(w, "Current:    %s (%d bids)\n", money(a.MinimumBid()), a.TotalBids)
	switch a.Status {
	case models.AuctionUpcoming:
		fmt.Fprintf(w, "Starts:     %s\n", a.StartTime.Local().Format(timeLayout))
	case models.AuctionLive:
		fmt.Fprintf(w, "Time left:  %s\n", countdown(a.TimeLeft(now)))
	default:
		if a.HighestBid != nil && a.HighestBid.Bidder.Username != "" {
			fmt.Fprintf(w, "Winner:     %s\n", a.HighestBid.Bidder.Username)
		}
	}
	if bids.Highest != nil {
		fmt.Fprintf(w, "Highest:    %s by %s\n", money(bids.Highest.Amount), bidder(bids.Highest.Bidder))
	}
	if len(bids.ForAuction) > 0 {
		fmt.Fprintln(w, "Recent bids:")
		renderBidRows(w, bids.ForAuction, 10)
	}
}

func bidder(u models.UserRef) string {
	if u.Username != "" {
		return u.Username
	}
	return u.ID
}

func renderBidRows(w io.Writer, bids []models.Bid, limit int) {
	tw := newTable(w, "  AMOUNT", "BIDDER", "TIME")
	for i, b := range bids {
		if limit > 0 && i == limit {
			break
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", money(b.Amount), bidder(b.Bidder), b.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func renderMyBids(w io.Writer, bids []models.Bid) {
	if len(bids) == 0 {
		fmt.Fprintln(w, "You have not placed any bids.")
		return
	}
	tw := newTable(w, "AUCTION", "TITLE", "AMOUNT", "STATE", "TIME")
	for _, b := range bids {
		state := "outbid"
		if b.IsWinning {
			state = "winning"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Auction.ID, b.Auction.Title, money(b.Amount), state, b.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func renderWishlist(w io.Writer, items []models.WishlistItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your wishlist is empty.")
		return
	}
	tw := newTable(w, "AUCTION", "TITLE", "PRICE", "STATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.Auction.ID, it.Auction.Title, money(it.Auction.CurrentPrice), it.Auction.Status)
	}
	_ = tw.Flush()
}

func renderNotifications(w io.Writer, n store.NotificationsState) {
	if len(n.Items) == 0 {
		fmt.Fprintln(w, "No notifications.")
		return
	}
	fmt.Fprintf(w, "%d unread\n", n.UnreadCount)
	tw := newTable(w, "", "ID", "TITLE", "MESSAGE", "TIME")
	for _, it := range n.Items {
		mark := " "
		if !it.IsRead {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, it.ID, it.Title, it.Message, it.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func renderCars(w io.Writer, cars []models.Car) {
	if len(cars) == 0 {
		fmt.Fprintln(w, "No cars found.")
		return
	}
	tw := newTable(w, "ID", "CAR", "MILEAGE", "PRICE", "STATUS")
	for _, c := range cars {
		fmt.Fprintf(tw, "%s\t%d %s %s\t%s km\t%s\t%s\n", c.ID, c.Year, c.Make, c.Model, humanize.Comma(int64(c.Mileage)), money(c.StartingPrice), c.Status)
	}
	_ = tw.Flush()
}

func renderPayments(w io.Writer, payments []models.Payment) {
	if len(payments) == 0 {
		fmt.Fprintln(w, "No payments.")
		return
	}
	tw := newTable(w, "ID", "AUCTION", "AMOUNT", "STATUS", "TIME")
	for _, p := range payments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Auction.ID, money(p.Amount), p.Status, p.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func renderProfile(w io.Writer, u models.User) {
	fmt.Fprintf(w, "Username: %s\n", u.Username)
	fmt.Fprintf(w, "Name:     %s\n", u.FullName)
	fmt.Fprintf(w, "Email:    %s\n", u.Email)
	fmt.Fprintf(w, "Mobile:   %s\n", u.MobileNumber)
}
