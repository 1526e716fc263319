package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/store"
)

type WishlistService interface {
	Fetch(ctx context.Context) error
	Add(ctx context.Context, auctionID string) error
	Remove(ctx context.Context, auctionID string) error
	Check(ctx context.Context, auctionID string) (bool, error)
	Clear(ctx context.Context) error
}

type wishlistService struct {
	api   WishlistAPI
	store *store.Store
}

func NewWishlistService(api WishlistAPI, st *store.Store) WishlistService {
	return &wishlistService{api: api, store: st}
}

func (s *wishlistService) signedIn() bool {
	return s.store.State().Auth.IsAuthenticated
}

func (s *wishlistService) Fetch(ctx context.Context) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}

	s.store.Start(store.SliceWishlist, store.OpFetchWishlist)
	items, err := s.api.MyWishlist(ctx)
	if err != nil {
		return fail(s.store, store.SliceWishlist, store.OpFetchWishlist, fmt.Errorf("fetch wishlist: %w", err))
	}
	s.store.ReceiveWishlist(items)
	return nil
}

func (s *wishlistService) Add(ctx context.Context, auctionID string) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}

	s.store.StartWishlistAction(store.OpAddWishlist, auctionID)
	item, err := s.api.AddToWishlist(ctx, auctionID)
	if err != nil {
		err = fmt.Errorf("add to wishlist: %w", err)
		s.store.FailWishlistAction(store.OpAddWishlist, auctionID, errMessage(err))
		return err
	}
	s.store.WishlistAdded(auctionID, &item)
	return nil
}

func (s *wishlistService) Remove(ctx context.Context, auctionID string) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}

	s.store.StartWishlistAction(store.OpRemoveWishlist, auctionID)
	if err := s.api.RemoveFromWishlist(ctx, auctionID); err != nil {
		err = fmt.Errorf("remove from wishlist: %w", err)
		s.store.FailWishlistAction(store.OpRemoveWishlist, auctionID, errMessage(err))
		return err
	}
	s.store.WishlistRemoved(auctionID)
	return nil
}

func (s *wishlistService) Check(ctx context.Context, auctionID string) (bool, error) {
	if !s.signedIn() {
		return false, ErrNotSignedIn
	}

	s.store.Start(store.SliceWishlist, store.OpCheckWishlist)
	in, err := s.api.CheckWishlist(ctx, auctionID)
	if err != nil {
		return false, fail(s.store, store.SliceWishlist, store.OpCheckWishlist, fmt.Errorf("check wishlist: %w", err))
	}
	s.store.WishlistChecked(auctionID, in)
	return in, nil
}

func (s *wishlistService) Clear(ctx context.Context) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}

	s.store.Start(store.SliceWishlist, store.OpClearWishlist)
	if err := s.api.ClearWishlist(ctx); err != nil {
		return fail(s.store, store.SliceWishlist, store.OpClearWishlist, fmt.Errorf("clear wishlist: %w", err))
	}
	s.store.WishlistCleared()
	return nil
}
