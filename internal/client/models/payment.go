package models

import "time"

type Payment struct {
	ID            string     `json:"_id"`
	Auction       AuctionRef `json:"auction"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PaymentInput is the body of POST /payments.
type PaymentInput struct {
	AuctionID     string  `json:"auctionId" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}
