package models

import (
	"net/url"
	"strconv"
	"time"
)

// AuctionStatus is the auction lifecycle state.
type AuctionStatus string

const (
	AuctionUpcoming AuctionStatus = "upcoming"
	AuctionLive     AuctionStatus = "live"
	AuctionEnded    AuctionStatus = "ended"
)

type Auction struct {
	ID            string        `json:"_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Car           CarSummary    `json:"car"`
	Seller        UserRef       `json:"seller"`
	StartingPrice float64       `json:"startingPrice"`
	CurrentPrice  float64       `json:"currentPrice"`
	HighestBid    *BidSummary   `json:"highestBid,omitempty"`
	Status        AuctionStatus `json:"status"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	TotalBids     int           `json:"totalBids"`
	Watchers      int           `json:"watchers"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// TimeLeft is the time remaining until EndTime, or zero once it has passed.
func (a Auction) TimeLeft(now time.Time) time.Duration {
	if d := a.EndTime.Sub(now); d > 0 {
		return d
	}
	return 0
}

// MinimumBid is the smallest amount that beats the current price.
func (a Auction) MinimumBid() float64 {
	if a.CurrentPrice > 0 {
		return a.CurrentPrice
	}
	return a.StartingPrice
}

// AuctionFilter narrows GET /auctions. Zero values are omitted.
type AuctionFilter struct {
	Status   AuctionStatus
	MinPrice float64
	MaxPrice float64
	Search   string
}

func (f AuctionFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

// AuctionInput is the body of POST /auctions.
type AuctionInput struct {
	CarID         string    `json:"carId" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description" validate:"max=500"`
	StartTime     time.Time `json:"startTime" validate:"required"`
	EndTime       time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	StartingPrice float64   `json:"startingPrice" validate:"gte=100,lte=10000000"`
}
