package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

const DefaultBidConfirmTimeout = 5 * time.Second

type BidService interface {
	Mine(ctx context.Context) error
	ForAuction(ctx context.Context, auctionID string) error
	Highest(ctx context.Context, auctionID string) error
	// Place validates and submits a bid, then waits for the push channel to
	// report the new price. When it does not within the confirm timeout the
	// auction is refetched instead.
	Place(ctx context.Context, auctionID string, amount float64) (models.Bid, error)
}

type bidService struct {
	api     BidAPI
	store   *store.Store
	log     logging.Logger
	confirm time.Duration
}

func NewBidService(api BidAPI, st *store.Store, log logging.Logger, confirmTimeout time.Duration) BidService {
	if confirmTimeout <= 0 {
		confirmTimeout = DefaultBidConfirmTimeout
	}
	return &bidService{api: api, store: st, log: log, confirm: confirmTimeout}
}

func (s *bidService) Mine(ctx context.Context) error {
	if !s.store.State().Auth.IsAuthenticated {
		return ErrNotSignedIn
	}

	s.store.Start(store.SliceBids, store.OpFetchMyBids)
	list, err := s.api.MyBids(ctx)
	if err != nil {
		return fail(s.store, store.SliceBids, store.OpFetchMyBids, fmt.Errorf("fetch my bids: %w", err))
	}
	s.store.ReceiveMyBids(list)
	return nil
}

func (s *bidService) ForAuction(ctx context.Context, auctionID string) error {
	s.store.Start(store.SliceBids, store.OpFetchAuctionBids)
	list, err := s.api.AuctionBids(ctx, auctionID)
	if err != nil {
		return fail(s.store, store.SliceBids, store.OpFetchAuctionBids, fmt.Errorf("fetch bids of %s: %w", auctionID, err))
	}
	s.store.ReceiveAuctionBids(auctionID, list)
	return nil
}

func (s *bidService) Highest(ctx context.Context, auctionID string) error {
	s.store.Start(store.SliceBids, store.OpFetchHighestBid)
	bid, err := s.api.HighestBid(ctx, auctionID)
	if err != nil {
		return fail(s.store, store.SliceBids, store.OpFetchHighestBid, fmt.Errorf("fetch highest bid of %s: %w", auctionID, err))
	}
	s.store.ReceiveHighestBid(auctionID, bid)
	return nil
}

func (s *bidService) Place(ctx context.Context, auctionID string, amount float64) (models.Bid, error) {
	st := s.store.State()

	var userID string
	if st.Auth.IsAuthenticated && st.Auth.User != nil {
		userID = st.Auth.User.ID
	}

	auction, ok := st.Auctions.Find(auctionID)
	if !ok && userID != "" {
		a, err := s.api.GetAuction(ctx, auctionID)
		if err != nil {
			return models.Bid{}, fail(s.store, store.SliceBids, store.OpPlaceBid, fmt.Errorf("fetch auction %s: %w", auctionID, err))
		}
		auction = a
	}

	if err := validate.Bid(validate.BidCheck{UserID: userID, Auction: auction, Amount: amount}); err != nil {
		return models.Bid{}, fail(s.store, store.SliceBids, store.OpPlaceBid, err)
	}

	confirmed := s.watch(auctionID, amount)
	defer confirmed.stop()

	s.store.Start(store.SliceBids, store.OpPlaceBid)
	bid, err := s.api.CreateBid(ctx, models.BidInput{AuctionID: auctionID, Amount: amount})
	if err != nil {
		return models.Bid{}, fail(s.store, store.SliceBids, store.OpPlaceBid, fmt.Errorf("place bid: %w", err))
	}
	s.store.Succeed(store.SliceBids, store.OpPlaceBid)
	s.log.Info(ctx, "bid placed", "auction_id", auctionID, "amount", amount)

	s.await(ctx, confirmed, auctionID, amount)
	return bid, nil
}

// watcher signals once any cached copy of an auction reaches an amount.
type watcher struct {
	done chan struct{}
	stop func()
}

func reached(st store.State, auctionID string, amount float64) bool {
	for _, a := range st.Auctions.Copies(auctionID) {
		if a.CurrentPrice >= amount {
			return true
		}
	}
	return false
}

func (s *bidService) watch(auctionID string, amount float64) watcher {
	w := watcher{done: make(chan struct{})}
	var closed bool
	w.stop = s.store.Subscribe(func(st store.State) {
		if !closed && reached(st, auctionID, amount) {
			closed = true
			close(w.done)
		}
	})
	return w
}

func (s *bidService) await(ctx context.Context, w watcher, auctionID string, amount float64) {
	if reached(s.store.State(), auctionID, amount) {
		return
	}

	timer := time.NewTimer(s.confirm)
	defer timer.Stop()

	select {
	case <-w.done:
		return
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	s.log.Warn(ctx, "no realtime confirmation for bid, refetching auction", "auction_id", auctionID, "amount", amount)
	a, err := s.api.GetAuction(ctx, auctionID)
	if err != nil {
		s.log.Warn(ctx, "refetch after bid failed", "auction_id", auctionID, "error", err)
		return
	}
	s.store.ReceiveAuction(a)
}
