package store

import (
	"maps"
	"slices"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Request is the lifecycle of one operation.
type Request struct {
	Status Status
	Error  string
}

// Op names an operation whose request status is tracked.
type Op string

const (
	OpLogin    Op = "login"
	OpRegister Op = "register"
	OpRestore  Op = "restore"
	OpProfile  Op = "profile"

	OpFetchAuctions Op = "fetchAuctions"
	OpFetchLive     Op = "fetchLive"
	OpFetchUpcoming Op = "fetchUpcoming"
	OpFetchMine     Op = "fetchMine"
	OpFetchAuction  Op = "fetchAuction"
	OpCreateAuction Op = "createAuction"

	OpFetchMyBids      Op = "fetchMyBids"
	OpFetchAuctionBids Op = "fetchAuctionBids"
	OpFetchHighestBid  Op = "fetchHighestBid"
	OpPlaceBid         Op = "placeBid"

	OpFetchWishlist  Op = "fetchWishlist"
	OpAddWishlist    Op = "addWishlist"
	OpRemoveWishlist Op = "removeWishlist"
	OpCheckWishlist  Op = "checkWishlist"
	OpClearWishlist  Op = "clearWishlist"

	OpFetchNotifications Op = "fetchNotifications"
	OpMarkRead           Op = "markRead"
	OpMarkAllRead        Op = "markAllRead"
)

// Requests maps operations to their status. Missing entries are idle.
type Requests map[Op]Request

func (r Requests) Get(op Op) Request {
	if v, ok := r[op]; ok {
		return v
	}
	return Request{Status: StatusIdle}
}

// Meta is embedded in every slice.
type Meta struct {
	Requests Requests
	Error    string
}

func (m Meta) clone() Meta {
	return Meta{Requests: maps.Clone(m.Requests), Error: m.Error}
}

type AuthState struct {
	Meta
	User            *models.User
	Token           string
	IsAuthenticated bool
}

type AuctionsState struct {
	Meta
	All      []models.Auction
	Live     []models.Auction
	Upcoming []models.Auction
	Mine     []models.Auction
	Current  *models.Auction
	// Viewing is the id of the auction the user has open. A single-auction
	// fetch that resolves for any other id does not touch Current.
	Viewing string
	Filters models.AuctionFilter
}

type BidsState struct {
	Meta
	Mine       []models.Bid
	ForAuction []models.Bid
	AuctionID  string
	Highest    *models.Bid
	PlacingBid bool
}

type WishlistState struct {
	Meta
	Items         []models.WishlistItem
	ActionLoading map[string]bool
	Membership    map[string]bool
}

type NotificationsState struct {
	Meta
	Items       []models.Notification
	UnreadCount int
}

type State struct {
	Auth          AuthState
	Auctions      AuctionsState
	Bids          BidsState
	Wishlist      WishlistState
	Notifications NotificationsState
}

func initialState() State {
	return State{
		Auth:          AuthState{Meta: Meta{Requests: Requests{}}},
		Auctions:      AuctionsState{Meta: Meta{Requests: Requests{}}},
		Bids:          BidsState{Meta: Meta{Requests: Requests{}}},
		Wishlist:      WishlistState{Meta: Meta{Requests: Requests{}}, ActionLoading: map[string]bool{}, Membership: map[string]bool{}},
		Notifications: NotificationsState{Meta: Meta{Requests: Requests{}}},
	}
}

// clone copies every slice, map and pointed-to record so the result shares
// no mutable memory with s. Nested slices inside records (photos, raw
// notification data) are never mutated and stay shared.
func (s State) clone() State {
	out := s

	out.Auth.Meta = s.Auth.Meta.clone()
	out.Auth.User = clonePtr(s.Auth.User)

	out.Auctions.Meta = s.Auctions.Meta.clone()
	out.Auctions.All = slices.Clone(s.Auctions.All)
	out.Auctions.Live = slices.Clone(s.Auctions.Live)
	out.Auctions.Upcoming = slices.Clone(s.Auctions.Upcoming)
	out.Auctions.Mine = slices.Clone(s.Auctions.Mine)
	out.Auctions.Current = clonePtr(s.Auctions.Current)

	out.Bids.Meta = s.Bids.Meta.clone()
	out.Bids.Mine = slices.Clone(s.Bids.Mine)
	out.Bids.ForAuction = slices.Clone(s.Bids.ForAuction)
	out.Bids.Highest = clonePtr(s.Bids.Highest)

	out.Wishlist.Meta = s.Wishlist.Meta.clone()
	out.Wishlist.Items = slices.Clone(s.Wishlist.Items)
	out.Wishlist.ActionLoading = maps.Clone(s.Wishlist.ActionLoading)
	out.Wishlist.Membership = maps.Clone(s.Wishlist.Membership)

	out.Notifications.Meta = s.Notifications.Meta.clone()
	out.Notifications.Items = slices.Clone(s.Notifications.Items)

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
