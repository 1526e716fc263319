package models

import (
	"bytes"
	"encoding/json"
	"time"
)

func isJSONString(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '"'
}

func isJSONNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// UserRef is a user as embedded in other documents.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

func (r *UserRef) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	if isJSONString(b) {
		*r = UserRef{}
		return json.Unmarshal(b, &r.ID)
	}
	type alias UserRef
	var v struct {
		alias
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = UserRef(v.alias)
	if r.ID == "" {
		r.ID = v.AltID
	}
	return nil
}

// Display returns the best human-readable name available.
func (r UserRef) Display() string {
	switch {
	case r.FullName != "":
		return r.FullName
	case r.Username != "":
		return r.Username
	default:
		return r.ID
	}
}

// CarSummary is the car as embedded in auctions and bids.
type CarSummary struct {
	ID     string   `json:"_id,omitempty"`
	Make   string   `json:"make,omitempty"`
	Model  string   `json:"model,omitempty"`
	Year   int      `json:"year,omitempty"`
	Photos []string `json:"photos,omitempty"`
}

func (c *CarSummary) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	if isJSONString(b) {
		*c = CarSummary{}
		return json.Unmarshal(b, &c.ID)
	}
	type alias CarSummary
	var v alias
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = CarSummary(v)
	return nil
}

// AuctionRef is an auction as embedded in bids, wishlist entries,
// payments and notifications.
type AuctionRef struct {
	ID           string        `json:"_id"`
	Title        string        `json:"title,omitempty"`
	Car          CarSummary    `json:"car,omitempty"`
	CurrentPrice float64       `json:"currentPrice,omitempty"`
	Status       AuctionStatus `json:"status,omitempty"`
	EndTime      *time.Time    `json:"endTime,omitempty"`
}

func (r *AuctionRef) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	if isJSONString(b) {
		*r = AuctionRef{}
		return json.Unmarshal(b, &r.ID)
	}
	type alias AuctionRef
	var v alias
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = AuctionRef(v)
	return nil
}

// BidSummary is the highest or winning bid attached to an auction.
type BidSummary struct {
	ID     string  `json:"_id,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Bidder UserRef `json:"bidder,omitempty"`
}

func (s *BidSummary) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	if isJSONString(b) {
		*s = BidSummary{}
		return json.Unmarshal(b, &s.ID)
	}
	type alias BidSummary
	var v alias
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = BidSummary(v)
	return nil
}
