package models

import "time"

type Bid struct {
	ID        string     `json:"_id"`
	Auction   AuctionRef `json:"auction"`
	Bidder    UserRef    `json:"bidder"`
	Amount    float64    `json:"amount"`
	IsWinning bool       `json:"isWinning"`
	CreatedAt time.Time  `json:"createdAt"`
}

// BidInput is the body of POST /bids.
type BidInput struct {
	AuctionID string  `json:"auctionId"`
	Amount    float64 `json:"amount"`
}
