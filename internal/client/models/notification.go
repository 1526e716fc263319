package models

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifyNewBid         NotificationType = "NEW_BID"
	NotifyAuctionStarted NotificationType = "AUCTION_STARTED"
	NotifyAuctionEnded   NotificationType = "AUCTION_ENDED"
	NotifyAuctionWon     NotificationType = "AUCTION_WON"
	NotifyOutbid         NotificationType = "OUTBID"
	NotifyPaymentUpdate  NotificationType = "PAYMENT_UPDATE"
)

type Notification struct {
	ID        string           `json:"_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      json.RawMessage  `json:"data,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	Auction   *AuctionRef      `json:"auction,omitempty"`
}
