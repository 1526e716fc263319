package validate

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

// BidCheck is everything the bid rules look at.
type BidCheck struct {
	UserID  string
	Auction models.Auction
	Amount  float64
}

// Bid applies the bid form rules in order and reports the first one that
// fails. An empty UserID means nobody is signed in.
func Bid(c BidCheck) error {
	fail := func(field string, cause error, msg string) error {
		return &Error{Fields: []FieldError{{Field: field, Message: msg}}, cause: cause}
	}

	switch {
	case c.UserID == "" || c.Auction.ID == "":
		return fail("auction", ErrNotSignedIn, "Please log in to place a bid")
	case c.Auction.Seller.ID == c.UserID:
		return fail("auction", ErrOwnAuction, "You cannot bid on your own auction")
	case c.Auction.Status == models.AuctionEnded:
		return fail("auction", ErrAuctionEnded, "This auction has ended")
	case math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) || c.Amount <= 0:
		return fail("amount", ErrBidAmount, "Please enter a valid bid amount")
	case c.Amount <= c.Auction.MinimumBid():
		return fail("amount", ErrBidTooLow,
			fmt.Sprintf("Bid must be higher than current bid of %.2f", c.Auction.MinimumBid()))
	}
	return nil
}
