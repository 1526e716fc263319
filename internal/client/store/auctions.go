package store

import (
	"slices"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

// ReceiveAuctions replaces the list that op fetches.
func (s *Store) ReceiveAuctions(op Op, list []models.Auction) {
	if list == nil {
		list = []models.Auction{}
	}
	s.update(func(st *State) {
		markSucceeded(&st.Auctions.Meta, op)
		switch op {
		case OpFetchLive:
			st.Auctions.Live = list
		case OpFetchUpcoming:
			st.Auctions.Upcoming = list
		case OpFetchMine:
			st.Auctions.Mine = list
		default:
			st.Auctions.All = list
		}
	})
}

// ViewAuction marks id as the open auction. Bids cached for another
// auction are dropped.
func (s *Store) ViewAuction(id string) {
	s.update(func(st *State) {
		st.Auctions.Viewing = id
		if st.Auctions.Current != nil && st.Auctions.Current.ID != id {
			st.Auctions.Current = nil
		}
		if st.Bids.AuctionID != id {
			st.Bids.AuctionID = id
			st.Bids.ForAuction = nil
			st.Bids.Highest = nil
		}
	})
}

// LeaveAuction clears the open auction.
func (s *Store) LeaveAuction() {
	s.update(func(st *State) {
		st.Auctions.Viewing = ""
		st.Auctions.Current = nil
		st.Bids.AuctionID = ""
		st.Bids.ForAuction = nil
		st.Bids.Highest = nil
	})
}

// ReceiveAuction applies a full record. It becomes Current only while it is
// the viewed auction; cached list copies are replaced either way.
func (s *Store) ReceiveAuction(a models.Auction) {
	s.update(func(st *State) {
		markSucceeded(&st.Auctions.Meta, OpFetchAuction)
		if st.Auctions.Viewing == a.ID {
			cur := a
			st.Auctions.Current = &cur
		}
		st.Auctions.eachList(func(list []models.Auction) {
			for i := range list {
				if list[i].ID == a.ID {
					list[i] = a
				}
			}
		})
	})
}

// AddMyAuction prepends a freshly created auction to Mine.
func (s *Store) AddMyAuction(a models.Auction) {
	s.update(func(st *State) {
		markSucceeded(&st.Auctions.Meta, OpCreateAuction)
		st.Auctions.Mine = append([]models.Auction{a}, st.Auctions.Mine...)
	})
}

func (s *Store) SetFilters(f models.AuctionFilter) {
	s.update(func(st *State) { st.Auctions.Filters = f })
}

// ApplyBid merges a newBid patch into every cached copy of the auction.
// An explicit currentPrice or totalBids is taken as is; the bid amount only
// fills a field the patch leaves unset, so totalBids is never bumped on top
// of an explicit count.
func (s *Store) ApplyBid(auctionID string, p models.BidPatch) {
	s.update(func(st *State) {
		st.Auctions.each(auctionID, func(a *models.Auction) {
			switch {
			case p.CurrentPrice != nil:
				a.CurrentPrice = *p.CurrentPrice
			case p.Amount != 0:
				a.CurrentPrice = p.Amount
			}
			switch {
			case p.TotalBids != nil:
				a.TotalBids = *p.TotalBids
			case p.Amount != 0:
				a.TotalBids++
			}
		})
	})
}

// ApplyStatus sets the lifecycle status of every cached copy and attaches
// the winning bid when one is given.
func (s *Store) ApplyStatus(auctionID string, status models.AuctionStatus, winner *models.BidSummary) {
	s.update(func(st *State) {
		st.Auctions.each(auctionID, func(a *models.Auction) {
			if status != "" {
				a.Status = status
			}
			if winner != nil {
				w := *winner
				a.HighestBid = &w
			}
		})
	})
}

func (a *AuctionsState) eachList(fn func([]models.Auction)) {
	for _, list := range [][]models.Auction{a.All, a.Live, a.Upcoming, a.Mine} {
		fn(list)
	}
}

func (a *AuctionsState) each(id string, fn func(*models.Auction)) {
	a.eachList(func(list []models.Auction) {
		for i := range list {
			if list[i].ID == id {
				fn(&list[i])
			}
		}
	})
	if a.Current != nil && a.Current.ID == id {
		fn(a.Current)
	}
}

// Find returns a copy of the cached auction, preferring Current.
func (a AuctionsState) Find(id string) (models.Auction, bool) {
	if a.Current != nil && a.Current.ID == id {
		return *a.Current, true
	}
	for _, list := range [][]models.Auction{a.All, a.Live, a.Upcoming, a.Mine} {
		if i := slices.IndexFunc(list, func(x models.Auction) bool { return x.ID == id }); i >= 0 {
			return list[i], true
		}
	}
	return models.Auction{}, false
}

// Copies returns every cached copy of the auction.
func (a AuctionsState) Copies(id string) []models.Auction {
	var out []models.Auction
	a.eachList(func(list []models.Auction) {
		for _, x := range list {
			if x.ID == id {
				out = append(out, x)
			}
		}
	})
	if a.Current != nil && a.Current.ID == id {
		out = append(out, *a.Current)
	}
	return out
}
