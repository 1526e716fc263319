package store

import (
	"slices"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (s *Store) ReceiveWishlist(items []models.WishlistItem) {
	if items == nil {
		items = []models.WishlistItem{}
	}
	s.update(func(st *State) {
		markSucceeded(&st.Wishlist.Meta, OpFetchWishlist)
		st.Wishlist.Items = items
		for _, it := range items {
			st.Wishlist.Membership[it.Auction.ID] = true
		}
	})
}

// StartWishlistAction marks op as loading and flags auctionID as busy.
func (s *Store) StartWishlistAction(op Op, auctionID string) {
	s.update(func(st *State) {
		markLoading(&st.Wishlist.Meta, op)
		st.Wishlist.ActionLoading[auctionID] = true
	})
}

// FailWishlistAction records the error and releases auctionID.
func (s *Store) FailWishlistAction(op Op, auctionID, msg string) {
	s.update(func(st *State) {
		markFailed(&st.Wishlist.Meta, op, msg)
		delete(st.Wishlist.ActionLoading, auctionID)
	})
}

// WishlistAdded records a successful add. The item is appended when the
// server returned one that is not listed yet.
func (s *Store) WishlistAdded(auctionID string, item *models.WishlistItem) {
	s.update(func(st *State) {
		markSucceeded(&st.Wishlist.Meta, OpAddWishlist)
		delete(st.Wishlist.ActionLoading, auctionID)
		st.Wishlist.Membership[auctionID] = true
		if item == nil || item.Auction.ID == "" {
			return
		}
		if !slices.ContainsFunc(st.Wishlist.Items, func(it models.WishlistItem) bool { return it.Auction.ID == item.Auction.ID }) {
			st.Wishlist.Items = append(st.Wishlist.Items, *item)
		}
	})
}

func (s *Store) WishlistRemoved(auctionID string) {
	s.update(func(st *State) {
		markSucceeded(&st.Wishlist.Meta, OpRemoveWishlist)
		delete(st.Wishlist.ActionLoading, auctionID)
		st.Wishlist.Membership[auctionID] = false
		st.Wishlist.Items = slices.DeleteFunc(st.Wishlist.Items, func(it models.WishlistItem) bool { return it.Auction.ID == auctionID })
	})
}

func (s *Store) WishlistCleared() {
	s.update(func(st *State) {
		markSucceeded(&st.Wishlist.Meta, OpClearWishlist)
		st.Wishlist.Items = []models.WishlistItem{}
		clear(st.Wishlist.Membership)
	})
}

func (s *Store) WishlistChecked(auctionID string, in bool) {
	s.update(func(st *State) {
		markSucceeded(&st.Wishlist.Meta, OpCheckWishlist)
		st.Wishlist.Membership[auctionID] = in
	})
}
