package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

type AuctionService interface {
	// List fetches all auctions matching f and remembers f as the filter.
	List(ctx context.Context, f models.AuctionFilter) error
	Live(ctx context.Context) error
	Upcoming(ctx context.Context) error
	Mine(ctx context.Context) error
	// View opens an auction: joins its room and fetches the full record.
	View(ctx context.Context, id string) error
	// Leave closes the open auction and leaves its room.
	Leave()
	// Refresh refetches the open auction, if any.
	Refresh(ctx context.Context) error
	Create(ctx context.Context, in models.AuctionInput) (models.Auction, error)
	// Sell registers a car and puts it up for auction in one go.
	Sell(ctx context.Context, car models.CarInput, auction models.AuctionInput) (models.Auction, error)
}

type auctionService struct {
	api   AuctionAPI
	cars  CarAPI
	rooms Rooms
	store *store.Store
	log   logging.Logger
}

func NewAuctionService(api AuctionAPI, cars CarAPI, rooms Rooms, st *store.Store, log logging.Logger) AuctionService {
	return &auctionService{api: api, cars: cars, rooms: rooms, store: st, log: log}
}

func (s *auctionService) fetchList(ctx context.Context, op store.Op, fetch func(context.Context) ([]models.Auction, error)) error {
	s.store.Start(store.SliceAuctions, op)
	list, err := fetch(ctx)
	if err != nil {
		return fail(s.store, store.SliceAuctions, op, fmt.Errorf("%s: %w", op, err))
	}
	s.store.ReceiveAuctions(op, list)
	return nil
}

func (s *auctionService) List(ctx context.Context, f models.AuctionFilter) error {
	s.store.SetFilters(f)
	return s.fetchList(ctx, store.OpFetchAuctions, func(ctx context.Context) ([]models.Auction, error) {
		return s.api.ListAuctions(ctx, f)
	})
}

func (s *auctionService) Live(ctx context.Context) error {
	return s.fetchList(ctx, store.OpFetchLive, s.api.LiveAuctions)
}

func (s *auctionService) Upcoming(ctx context.Context) error {
	return s.fetchList(ctx, store.OpFetchUpcoming, s.api.UpcomingAuctions)
}

func (s *auctionService) Mine(ctx context.Context) error {
	if !s.store.State().Auth.IsAuthenticated {
		return ErrNotSignedIn
	}
	return s.fetchList(ctx, store.OpFetchMine, s.api.MyAuctions)
}

func (s *auctionService) View(ctx context.Context, id string) error {
	prev := s.store.State().Auctions.Viewing
	if prev != "" && prev != id {
		s.rooms.LeaveAuction(prev)
	}

	s.store.ViewAuction(id)
	s.rooms.JoinAuction(id)
	return s.fetch(ctx, id)
}

func (s *auctionService) fetch(ctx context.Context, id string) error {
	s.store.Start(store.SliceAuctions, store.OpFetchAuction)
	a, err := s.api.GetAuction(ctx, id)
	if err != nil {
		return fail(s.store, store.SliceAuctions, store.OpFetchAuction, fmt.Errorf("fetch auction %s: %w", id, err))
	}
	s.store.ReceiveAuction(a)
	return nil
}

func (s *auctionService) Leave() {
	id := s.store.State().Auctions.Viewing
	if id == "" {
		return
	}
	s.rooms.LeaveAuction(id)
	s.store.LeaveAuction()
}

func (s *auctionService) Refresh(ctx context.Context) error {
	id := s.store.State().Auctions.Viewing
	if id == "" {
		return nil
	}
	return s.fetch(ctx, id)
}

func (s *auctionService) Create(ctx context.Context, in models.AuctionInput) (models.Auction, error) {
	if !s.store.State().Auth.IsAuthenticated {
		return models.Auction{}, ErrNotSignedIn
	}
	if err := validate.Struct(in); err != nil {
		return models.Auction{}, fail(s.store, store.SliceAuctions, store.OpCreateAuction, err)
	}

	s.store.Start(store.SliceAuctions, store.OpCreateAuction)
	a, err := s.api.CreateAuction(ctx, in)
	if err != nil {
		return models.Auction{}, fail(s.store, store.SliceAuctions, store.OpCreateAuction, fmt.Errorf("create auction: %w", err))
	}

	s.store.AddMyAuction(a)
	s.log.Info(ctx, "auction created", "auction_id", a.ID)
	return a, nil
}

func (s *auctionService) Sell(ctx context.Context, car models.CarInput, in models.AuctionInput) (models.Auction, error) {
	if !s.store.State().Auth.IsAuthenticated {
		return models.Auction{}, ErrNotSignedIn
	}
	if err := validate.Struct(car); err != nil {
		return models.Auction{}, fail(s.store, store.SliceAuctions, store.OpCreateAuction, err)
	}
	if in.StartingPrice == 0 {
		in.StartingPrice = car.StartingPrice
	}
	if in.Title == "" {
		in.Title = car.Title
	}
	probe := in
	probe.CarID = "-" // assigned once the car exists
	if err := validate.Struct(probe); err != nil {
		return models.Auction{}, fail(s.store, store.SliceAuctions, store.OpCreateAuction, err)
	}

	c, err := s.cars.CreateCar(ctx, car)
	if err != nil {
		return models.Auction{}, fail(s.store, store.SliceAuctions, store.OpCreateAuction, fmt.Errorf("create car: %w", err))
	}

	in.CarID = c.ID
	return s.Create(ctx, in)
}
