package services

//go:generate mockgen -source=deps.go -destination=mock_deps.go -package=services

import (
	"context"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/push"
)

// AuthAPI is the part of the remote API used for identity.
type AuthAPI interface {
	Login(ctx context.Context, in models.LoginInput) (models.AuthResponse, error)
	Register(ctx context.Context, in models.RegisterInput) (models.AuthResponse, error)
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, in models.ProfileUpdate) (models.User, error)
	SetToken(token string)
}

type AuctionAPI interface {
	ListAuctions(ctx context.Context, f models.AuctionFilter) ([]models.Auction, error)
	LiveAuctions(ctx context.Context) ([]models.Auction, error)
	UpcomingAuctions(ctx context.Context) ([]models.Auction, error)
	MyAuctions(ctx context.Context) ([]models.Auction, error)
	GetAuction(ctx context.Context, id string) (models.Auction, error)
	CreateAuction(ctx context.Context, in models.AuctionInput) (models.Auction, error)
}

type BidAPI interface {
	CreateBid(ctx context.Context, in models.BidInput) (models.Bid, error)
	AuctionBids(ctx context.Context, auctionID string) ([]models.Bid, error)
	MyBids(ctx context.Context) ([]models.Bid, error)
	HighestBid(ctx context.Context, auctionID string) (*models.Bid, error)
	GetAuction(ctx context.Context, id string) (models.Auction, error)
}

type WishlistAPI interface {
	AddToWishlist(ctx context.Context, auctionID string) (models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, auctionID string) error
	MyWishlist(ctx context.Context) ([]models.WishlistItem, error)
	CheckWishlist(ctx context.Context, auctionID string) (bool, error)
	ClearWishlist(ctx context.Context) error
}

type NotificationAPI interface {
	MyNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type CarAPI interface {
	ListCars(ctx context.Context, f models.CarFilter) ([]models.Car, error)
	ApprovedCars(ctx context.Context) ([]models.Car, error)
	MyCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (models.Car, error)
	CreateCar(ctx context.Context, in models.CarInput) (models.Car, error)
	UpdateCar(ctx context.Context, id string, in models.CarInput) (models.Car, error)
	DeleteCar(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]models.Category, error)
}

type PaymentAPI interface {
	CreatePayment(ctx context.Context, in models.PaymentInput) (models.Payment, error)
	MyPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
}

// Realtime is the push channel as seen by the services.
type Realtime interface {
	Connect(ctx context.Context, token string) error
	Disconnect()
	On(event string, fn push.Handler) func()
	OnReconnect(fn func()) func()
	JoinAuction(auctionID string)
	LeaveAuction(auctionID string)
}

// Rooms joins and leaves per-auction rooms on the push channel.
type Rooms interface {
	JoinAuction(auctionID string)
	LeaveAuction(auctionID string)
}

// Connector starts and stops the realtime session for a signed-in user.
type Connector interface {
	Connect(ctx context.Context, token string) error
	Disconnect()
}
