package store

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

// Slice selects a part of State for request bookkeeping.
type Slice int

const (
	SliceAuth Slice = iota
	SliceAuctions
	SliceBids
	SliceWishlist
	SliceNotifications
)

// Listener receives a snapshot after every committed update. Listeners run
// synchronously in commit order and must not call mutating Store methods.
type Listener func(State)

type Store struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	state    State

	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{state: initialState(), listeners: make(map[int]Listener)}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// update applies fn to a copy of the state and commits it. Listeners are
// notified with their own snapshots before the next update can notify.
func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	next := s.state.clone()
	fn(&next)
	s.state = next

	var (
		listeners []Listener
		snapshots []State
	)
	if len(s.listeners) > 0 {
		ids := make([]int, 0, len(s.listeners))
		for id := range s.listeners {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			listeners = append(listeners, s.listeners[id])
			snapshots = append(snapshots, next.clone())
		}
	}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for i, l := range listeners {
		l(snapshots[i])
	}
}

func (st *State) meta(sl Slice) *Meta {
	switch sl {
	case SliceAuth:
		return &st.Auth.Meta
	case SliceAuctions:
		return &st.Auctions.Meta
	case SliceBids:
		return &st.Bids.Meta
	case SliceWishlist:
		return &st.Wishlist.Meta
	default:
		return &st.Notifications.Meta
	}
}

func markLoading(m *Meta, op Op) {
	m.Requests[op] = Request{Status: StatusLoading}
	m.Error = ""
}

func markSucceeded(m *Meta, op Op) {
	m.Requests[op] = Request{Status: StatusSucceeded}
}

func markFailed(m *Meta, op Op, msg string) {
	m.Requests[op] = Request{Status: StatusFailed, Error: msg}
	m.Error = msg
}

// Start marks op as loading on a slice and clears the slice error.
func (s *Store) Start(sl Slice, op Op) {
	s.update(func(st *State) {
		markLoading(st.meta(sl), op)
		if op == OpPlaceBid {
			st.Bids.PlacingBid = true
		}
	})
}

// Succeed marks op as succeeded for operations that return no data.
func (s *Store) Succeed(sl Slice, op Op) {
	s.update(func(st *State) {
		markSucceeded(st.meta(sl), op)
		if op == OpPlaceBid {
			st.Bids.PlacingBid = false
		}
	})
}

// Fail marks op as failed and records msg as the slice error.
func (s *Store) Fail(sl Slice, op Op, msg string) {
	s.update(func(st *State) {
		markFailed(st.meta(sl), op, msg)
		switch op {
		case OpPlaceBid:
			st.Bids.PlacingBid = false
		case OpFetchAuctionBids:
			st.Bids.ForAuction = []models.Bid{}
		case OpFetchHighestBid:
			st.Bids.Highest = nil
		}
	})
}

// ClearError drops the last error of a slice.
func (s *Store) ClearError(sl Slice) {
	s.update(func(st *State) { st.meta(sl).Error = "" })
}

// Reset returns the whole store to its initial state, e.g. on logout.
func (s *Store) Reset() {
	s.update(func(st *State) { *st = initialState() })
}
