package store

import (
	"slices"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (s *Store) ReceiveMyBids(list []models.Bid) {
	if list == nil {
		list = []models.Bid{}
	}
	s.update(func(st *State) {
		markSucceeded(&st.Bids.Meta, OpFetchMyBids)
		st.Bids.Mine = list
	})
}

// ReceiveAuctionBids stores the history of auctionID. A list that resolves
// after the user moved to another auction is ignored.
func (s *Store) ReceiveAuctionBids(auctionID string, list []models.Bid) {
	if list == nil {
		list = []models.Bid{}
	}
	s.update(func(st *State) {
		markSucceeded(&st.Bids.Meta, OpFetchAuctionBids)
		if st.Bids.AuctionID != auctionID {
			return
		}
		st.Bids.ForAuction = list
	})
}

// ReceiveHighestBid stores the highest bid of auctionID, nil when there is none.
func (s *Store) ReceiveHighestBid(auctionID string, bid *models.Bid) {
	s.update(func(st *State) {
		markSucceeded(&st.Bids.Meta, OpFetchHighestBid)
		if st.Bids.AuctionID != auctionID {
			return
		}
		st.Bids.Highest = clonePtr(bid)
	})
}

// AddBid applies a bid announced on the push channel. userID is the
// signed-in user, empty when nobody is.
func (s *Store) AddBid(bid models.Bid, userID string) {
	s.update(func(st *State) {
		auctionID := bid.Auction.ID
		if auctionID != "" && auctionID == st.Bids.AuctionID {
			if !slices.ContainsFunc(st.Bids.ForAuction, func(b models.Bid) bool { return bid.ID != "" && b.ID == bid.ID }) {
				st.Bids.ForAuction = append([]models.Bid{bid}, st.Bids.ForAuction...)
			}
			if st.Bids.Highest == nil || bid.Amount > st.Bids.Highest.Amount {
				h := bid
				st.Bids.Highest = &h
			}
		}

		if userID == "" {
			return
		}
		for i := range st.Bids.Mine {
			if st.Bids.Mine[i].Auction.ID == auctionID {
				st.Bids.Mine[i].IsWinning = false
			}
		}
		if bid.Bidder.ID != userID {
			return
		}
		mine := bid
		mine.IsWinning = true
		st.Bids.Mine = slices.DeleteFunc(st.Bids.Mine, func(b models.Bid) bool { return bid.ID != "" && b.ID == bid.ID })
		st.Bids.Mine = append([]models.Bid{mine}, st.Bids.Mine...)
	})
}

// SettleBids marks the user's bids on an ended auction as winning or not
// by comparing the bidder with the winner.
func (s *Store) SettleBids(auctionID, winnerID string) {
	s.update(func(st *State) {
		settle := func(list []models.Bid) {
			for i := range list {
				if list[i].Auction.ID == auctionID {
					list[i].IsWinning = list[i].Bidder.ID == winnerID
				}
			}
		}
		settle(st.Bids.Mine)
		if st.Bids.AuctionID == auctionID {
			settle(st.Bids.ForAuction)
		}
	})
}
