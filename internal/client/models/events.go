package models

import "encoding/json"

// Push event names.
const (
	EventNewBid         = "newBid"
	EventAuctionStarted = "auctionStarted"
	EventAuctionEnded   = "auctionEnded"
	EventAuctionStatus  = "auctionStatus"
	EventAuctionWon     = "auctionWon"
	EventOutbid         = "outbid"
	EventPaymentUpdate  = "paymentUpdate"

	EventJoinAuction  = "joinAuction"
	EventLeaveAuction = "leaveAuction"
)

// EventAuctionID returns the auction a push payload names: the top-level
// auctionId, then bid.auction, then auction. It is empty when none is set.
func EventAuctionID(data []byte) string {
	var ref struct {
		AuctionID string      `json:"auctionId"`
		Auction   *AuctionRef `json:"auction"`
		Bid       *struct {
			Auction *AuctionRef `json:"auction"`
		} `json:"bid"`
	}
	_ = json.Unmarshal(data, &ref)

	switch {
	case ref.AuctionID != "":
		return ref.AuctionID
	case ref.Bid != nil && ref.Bid.Auction != nil && ref.Bid.Auction.ID != "":
		return ref.Bid.Auction.ID
	case ref.Auction != nil:
		return ref.Auction.ID
	}
	return ""
}

// BidPatch carries the auction fields a newBid event may name. Nil pointers
// and a zero Amount mean "not present".
type BidPatch struct {
	CurrentPrice *float64
	TotalBids    *int
	Amount       float64
}

// NewBidEvent is the payload of "newBid". The bid document may also carry
// currentPrice and totalBids for the auction.
type NewBidEvent struct {
	AuctionID string
	Bid       Bid
	Patch     BidPatch
}

func (e *NewBidEvent) UnmarshalJSON(b []byte) error {
	var raw struct {
		AuctionID string          `json:"auctionId"`
		Bid       json.RawMessage `json:"bid"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = NewBidEvent{AuctionID: raw.AuctionID}
	if len(raw.Bid) == 0 || isJSONNull(raw.Bid) {
		return nil
	}
	if err := json.Unmarshal(raw.Bid, &e.Bid); err != nil {
		return err
	}
	var patch struct {
		CurrentPrice *float64 `json:"currentPrice"`
		TotalBids    *int     `json:"totalBids"`
	}
	if err := json.Unmarshal(raw.Bid, &patch); err != nil {
		return err
	}
	e.Patch = BidPatch{CurrentPrice: patch.CurrentPrice, TotalBids: patch.TotalBids, Amount: e.Bid.Amount}
	if e.AuctionID == "" {
		e.AuctionID = e.Bid.Auction.ID
	}
	if e.Bid.Auction.ID == "" {
		e.Bid.Auction.ID = e.AuctionID
	}
	return nil
}

// AuctionStatusEvent covers auctionStarted, auctionEnded and auctionStatus.
// Winner is set when an ended auction names a winner; the backend sends
// either the winning user or the winning bid, both are folded into a
// BidSummary whose Bidder identifies the winner.
type AuctionStatusEvent struct {
	AuctionID string
	Status    AuctionStatus
	Message   string
	Auction   *AuctionRef
	Winner    *BidSummary
	Raw       json.RawMessage
}

func (e *AuctionStatusEvent) UnmarshalJSON(b []byte) error {
	var raw struct {
		AuctionID string          `json:"auctionId"`
		Status    AuctionStatus   `json:"status"`
		Message   string          `json:"message"`
		Auction   *AuctionRef     `json:"auction"`
		Winner    json.RawMessage `json:"winner"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = AuctionStatusEvent{
		AuctionID: raw.AuctionID,
		Status:    raw.Status,
		Message:   raw.Message,
		Auction:   raw.Auction,
		Raw:       append(json.RawMessage(nil), b...),
	}
	if e.AuctionID == "" && e.Auction != nil {
		e.AuctionID = e.Auction.ID
	}
	if len(raw.Winner) == 0 || isJSONNull(raw.Winner) {
		return nil
	}

	var w struct {
		ID       string   `json:"_id"`
		AltID    string   `json:"id"`
		Amount   float64  `json:"amount"`
		Bidder   *UserRef `json:"bidder"`
		Username string   `json:"username"`
		FullName string   `json:"fullName"`
	}
	if isJSONString(raw.Winner) {
		if err := json.Unmarshal(raw.Winner, &w.ID); err != nil {
			return err
		}
	} else if err := json.Unmarshal(raw.Winner, &w); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = w.AltID
	}
	if w.Bidder != nil {
		e.Winner = &BidSummary{ID: w.ID, Amount: w.Amount, Bidder: *w.Bidder}
	} else {
		e.Winner = &BidSummary{Amount: w.Amount, Bidder: UserRef{ID: w.ID, Username: w.Username, FullName: w.FullName}}
	}
	return nil
}

// AuctionWonEvent is the payload of "auctionWon".
type AuctionWonEvent struct {
	AuctionID string      `json:"auctionId"`
	Message   string      `json:"message"`
	Auction   *AuctionRef `json:"auction,omitempty"`
}

// OutbidEvent is the payload of "outbid".
type OutbidEvent struct {
	AuctionID    string  `json:"auctionId"`
	Message      string  `json:"message"`
	NewBidAmount float64 `json:"newBidAmount"`
}

// PaymentUpdateEvent is the payload of "paymentUpdate".
type PaymentUpdateEvent struct {
	Message string          `json:"message"`
	Payment json.RawMessage `json:"payment,omitempty"`
}
