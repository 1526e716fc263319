package models

import "time"

type WishlistItem struct {
	ID        string     `json:"_id"`
	Auction   AuctionRef `json:"auction"`
	CreatedAt time.Time  `json:"createdAt"`
}
