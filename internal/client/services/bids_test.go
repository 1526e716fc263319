package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/api"
	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
)

func liveAuction() models.Auction {
	return models.Auction{
		ID:            "A1",
		Seller:        models.UserRef{ID: "seller"},
		Status:        models.AuctionLive,
		StartingPrice: 500,
		CurrentPrice:  1000,
		TotalBids:     3,
	}
}

func bidFixture(t *testing.T, confirm time.Duration) (*MockBidAPI, *store.Store, BidService) {
	ctrl := gomock.NewController(t)
	m := NewMockBidAPI(ctrl)
	st := signedIn(t)
	st.ViewAuction("A1")
	st.ReceiveAuction(liveAuction())
	return m, st, NewBidService(m, st, nopLog, confirm)
}

func TestBid_Place_ConfirmedByPush(t *testing.T) {
	m, st, svc := bidFixture(t, 5*time.Second)

	m.EXPECT().CreateBid(gomock.Any(), models.BidInput{AuctionID: "A1", Amount: 1200}).
		DoAndReturn(func(context.Context, models.BidInput) (models.Bid, error) {
			assert.True(t, st.State().Bids.PlacingBid)
			go func() {
				time.Sleep(20 * time.Millisecond)
				st.ApplyBid("A1", models.BidPatch{Amount: 1200})
			}()
			return models.Bid{ID: "b1", Amount: 1200}, nil
		})

	start := time.Now()
	bid, err := svc.Place(testCtx(), "A1", 1200)
	require.NoError(t, err)
	assert.Equal(t, "b1", bid.ID)
	assert.Less(t, time.Since(start), 2*time.Second)

	s := st.State()
	assert.False(t, s.Bids.PlacingBid)
	assert.Equal(t, 1200.0, s.Auctions.Current.CurrentPrice)
	assert.Equal(t, 4, s.Auctions.Current.TotalBids)
}

func TestBid_Place_RefetchesWhenPushIsMissing(t *testing.T) {
	m, st, svc := bidFixture(t, 30*time.Millisecond)

	authoritative := liveAuction()
	authoritative.CurrentPrice = 1200
	authoritative.TotalBids = 4

	gomock.InOrder(
		m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(models.Bid{ID: "b1", Amount: 1200}, nil),
		m.EXPECT().GetAuction(gomock.Any(), "A1").Return(authoritative, nil),
	)

	_, err := svc.Place(testCtx(), "A1", 1200)
	require.NoError(t, err)

	cur := st.State().Auctions.Current
	require.NotNil(t, cur)
	assert.Equal(t, 1200.0, cur.CurrentPrice)
	assert.Equal(t, 4, cur.TotalBids)
}

func TestBid_Place_ValidationSkipsNetwork(t *testing.T) {
	_, st, svc := bidFixture(t, time.Second)

	_, err := svc.Place(testCtx(), "A1", 900)
	require.ErrorIs(t, err, validate.ErrBidTooLow)

	s := st.State()
	assert.False(t, s.Bids.PlacingBid)
	assert.Equal(t, "Bid must be higher than current bid of 1000.00", s.Bids.Error)
	assert.Equal(t, store.StatusFailed, s.Bids.Requests.Get(store.OpPlaceBid).Status)
}

func TestBid_Place_OwnAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockBidAPI(ctrl)
	st := store.New()
	st.SetSession(store.OpLogin, "t", models.User{ID: "seller"})
	st.ReceiveAuctions(store.OpFetchAuctions, []models.Auction{liveAuction()})

	_, err := NewBidService(m, st, nopLog, time.Second).Place(testCtx(), "A1", 5000)
	require.ErrorIs(t, err, validate.ErrOwnAuction)
}

func TestBid_Place_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := store.New()

	_, err := NewBidService(NewMockBidAPI(ctrl), st, nopLog, time.Second).Place(testCtx(), "A1", 5000)
	require.ErrorIs(t, err, validate.ErrNotSignedIn)
	assert.Equal(t, "Please log in to place a bid", st.State().Bids.Error)
}

func TestBid_Place_FetchesUnknownAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockBidAPI(ctrl)
	st := signedIn(t)
	svc := NewBidService(m, st, nopLog, time.Second)

	ended := liveAuction()
	ended.ID = "A9"
	ended.Status = models.AuctionEnded
	m.EXPECT().GetAuction(gomock.Any(), "A9").Return(ended, nil)

	_, err := svc.Place(testCtx(), "A9", 5000)
	require.ErrorIs(t, err, validate.ErrAuctionEnded)
}

func TestBid_Place_Rejected(t *testing.T) {
	m, st, svc := bidFixture(t, time.Second)

	m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).
		Return(models.Bid{}, &api.Error{StatusCode: 400, Message: "Auction is not live"})

	_, err := svc.Place(testCtx(), "A1", 1500)
	require.Error(t, err)

	s := st.State()
	assert.False(t, s.Bids.PlacingBid)
	assert.Equal(t, "Auction is not live", s.Bids.Error)
	assert.Equal(t, 1000.0, s.Auctions.Current.CurrentPrice)
}

func TestBid_Place_Unavailable(t *testing.T) {
	m, st, svc := bidFixture(t, time.Second)

	m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(models.Bid{}, api.ErrUnavailable)

	_, err := svc.Place(testCtx(), "A1", 1500)
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Equal(t, "Network error", st.State().Bids.Error)
}

func TestBid_Fetches(t *testing.T) {
	m, st, svc := bidFixture(t, time.Second)

	mine := []models.Bid{{ID: "b1", Auction: models.AuctionRef{ID: "A1"}, Amount: 1000, IsWinning: true}}
	m.EXPECT().MyBids(gomock.Any()).Return(mine, nil)
	m.EXPECT().AuctionBids(gomock.Any(), "A1").Return(mine, nil)
	m.EXPECT().HighestBid(gomock.Any(), "A1").Return(&mine[0], nil)

	require.NoError(t, svc.Mine(testCtx()))
	require.NoError(t, svc.ForAuction(testCtx(), "A1"))
	require.NoError(t, svc.Highest(testCtx(), "A1"))

	s := st.State()
	assert.Equal(t, mine, s.Bids.Mine)
	assert.Equal(t, mine, s.Bids.ForAuction)
	require.NotNil(t, s.Bids.Highest)
	assert.Equal(t, 1000.0, s.Bids.Highest.Amount)
}

func TestBid_FetchFailuresFallBack(t *testing.T) {
	m, st, svc := bidFixture(t, time.Second)
	st.ReceiveAuctionBids("A1", []models.Bid{{ID: "old"}})
	st.ReceiveHighestBid("A1", &models.Bid{ID: "old"})

	boom := errors.New("boom")
	m.EXPECT().AuctionBids(gomock.Any(), "A1").Return(nil, boom)
	m.EXPECT().HighestBid(gomock.Any(), "A1").Return(nil, boom)

	require.ErrorIs(t, svc.ForAuction(testCtx(), "A1"), boom)
	require.ErrorIs(t, svc.Highest(testCtx(), "A1"), boom)

	s := st.State()
	assert.Empty(t, s.Bids.ForAuction)
	assert.Nil(t, s.Bids.Highest)
}

func TestBid_Mine_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewBidService(NewMockBidAPI(ctrl), store.New(), nopLog, 0)
	require.ErrorIs(t, svc.Mine(testCtx()), ErrNotSignedIn)
}
