package validate

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func validCar() models.CarInput {
	return models.CarInput{
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2018,
		Mileage:       42000,
		VIN:           "1HGBH41JXMN109186",
		StartingPrice: 5000,
	}
}

func TestStruct_Car(t *testing.T) {
	orig := now
	t.Cleanup(func() { now = orig })
	now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		mutate func(*models.CarInput)
		field  string
		msg    string
	}{
		{"valid", func(*models.CarInput) {}, "", ""},
		{"vin with I", func(c *models.CarInput) { c.VIN = "1HGBH41JXMN10918I" }, "vin", "Invalid VIN format"},
		{"vin too short", func(c *models.CarInput) { c.VIN = "1HGBH41" }, "vin", "Invalid VIN format"},
		{"no vin is fine", func(c *models.CarInput) { c.VIN = "" }, "", ""},
		{"year too old", func(c *models.CarInput) { c.Year = 1899 }, "year", "Year must be between 1900 and 2026"},
		{"next year ok", func(c *models.CarInput) { c.Year = 2026 }, "", ""},
		{"year in future", func(c *models.CarInput) { c.Year = 2027 }, "year", "Year must be between 1900 and 2026"},
		{"negative mileage", func(c *models.CarInput) { c.Mileage = -1 }, "mileage", "mileage must be at least 0"},
		{"cheap", func(c *models.CarInput) { c.StartingPrice = 99 }, "startingPrice", "startingPrice must be at least 100"},
		{"missing make", func(c *models.CarInput) { c.Make = "" }, "make", "make is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCar()
			tt.mutate(&in)

			err := Struct(in)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tt.msg, verr.Field(tt.field))
		})
	}
}

func TestStruct_Register(t *testing.T) {
	err := Struct(models.RegisterInput{
		Username:     "al",
		Email:        "nope",
		Password:     "12345",
		FullName:     "Alice",
		MobileNumber: "12-34",
	})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username must be at least 3 characters", verr.Field("username"))
	assert.Equal(t, "Please enter a valid email address", verr.Field("email"))
	assert.Equal(t, "password must be at least 6 characters", verr.Field("password"))
	assert.Equal(t, "Phone number must be 10-15 digits", verr.Field("mobileNumber"))
	assert.Empty(t, verr.Field("fullName"))

	require.NoError(t, Struct(models.RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "secret1",
		FullName:     "Alice",
		MobileNumber: "0123456789",
	}))
}

func TestStruct_AuctionTimes(t *testing.T) {
	start := time.Now()
	err := Struct(models.AuctionInput{
		CarID:         "c1",
		Title:         "Corolla",
		StartTime:     start,
		EndTime:       start.Add(-time.Hour),
		StartingPrice: 1000,
	})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endTime must be after startTime", verr.Field("endTime"))
}

func TestBid(t *testing.T) {
	live := models.Auction{
		ID:            "A1",
		Seller:        models.UserRef{ID: "seller"},
		Status:        models.AuctionLive,
		StartingPrice: 500,
		CurrentPrice:  1000,
	}
	fresh := live
	fresh.CurrentPrice = 0
	ended := live
	ended.Status = models.AuctionEnded

	tests := []struct {
		name    string
		check   BidCheck
		wantErr error
		msg     string
	}{
		{"ok", BidCheck{UserID: "me", Auction: live, Amount: 1001}, nil, ""},
		{"signed out", BidCheck{Auction: live, Amount: 1001}, ErrNotSignedIn, "Please log in to place a bid"},
		{"own auction", BidCheck{UserID: "seller", Auction: live, Amount: 1001}, ErrOwnAuction, "You cannot bid on your own auction"},
		{"ended", BidCheck{UserID: "me", Auction: ended, Amount: 1001}, ErrAuctionEnded, "This auction has ended"},
		{"zero", BidCheck{UserID: "me", Auction: live}, ErrBidAmount, "Please enter a valid bid amount"},
		{"not a number", BidCheck{UserID: "me", Auction: live, Amount: math.NaN()}, ErrBidAmount, "Please enter a valid bid amount"},
		{"infinite", BidCheck{UserID: "me", Auction: live, Amount: math.Inf(1)}, ErrBidAmount, "Please enter a valid bid amount"},
		{"equal to current", BidCheck{UserID: "me", Auction: live, Amount: 1000}, ErrBidTooLow, "Bid must be higher than current bid of 1000.00"},
		{"no bids uses starting price", BidCheck{UserID: "me", Auction: fresh, Amount: 500}, ErrBidTooLow, "Bid must be higher than current bid of 500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Bid(tt.check)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestError_NotOtherSentinels(t *testing.T) {
	err := Bid(BidCheck{UserID: "me", Auction: models.Auction{ID: "A1"}, Amount: -1})
	assert.False(t, errors.Is(err, ErrBidTooLow))
}
