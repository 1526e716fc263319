package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/notify"
	"github.com/dmitrijs2005/carbid/internal/client/push"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

const (
	sinkBuffer  = 64
	sinkTimeout = 10 * time.Second
)

// Refresher refetches whatever the user is looking at.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Bridge applies push events to the store. It implements Connector: the
// handlers are registered on every Connect because the push client drops
// them on Disconnect.
type Bridge struct {
	push    Realtime
	store   *store.Store
	sink    notify.Sink
	refresh Refresher
	log     logging.Logger

	newID func() string
	now   func() time.Time

	mu     sync.Mutex
	unsubs []func()

	qmu    sync.Mutex
	closed bool
	queue  chan models.Notification
	done   chan struct{}
}

func NewBridge(p Realtime, st *store.Store, sink notify.Sink, refresh Refresher, log logging.Logger) *Bridge {
	if sink == nil {
		sink = notify.Nop{}
	}
	b := &Bridge{
		push:    p,
		store:   st,
		sink:    sink,
		refresh: refresh,
		log:     log,
		newID:   uuid.NewString,
		now:     time.Now,
		queue:   make(chan models.Notification, sinkBuffer),
		done:    make(chan struct{}),
	}
	go b.forward()
	return b
}

func (b *Bridge) Connect(ctx context.Context, token string) error {
	b.subscribe()
	return b.push.Connect(ctx, token)
}

func (b *Bridge) Disconnect() {
	b.unsubscribe()
	b.push.Disconnect()
}

// Close disconnects and stops forwarding to the sink. Queued notifications
// are flushed first.
func (b *Bridge) Close() error {
	b.Disconnect()

	b.qmu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.qmu.Unlock()

	<-b.done
	return b.sink.Close()
}

func (b *Bridge) subscribe() {
	b.unsubscribe()

	handlers := map[string]push.Handler{
		models.EventNewBid:         b.onNewBid,
		models.EventAuctionStarted: b.onAuctionStarted,
		models.EventAuctionEnded:   b.onAuctionEnded,
		models.EventAuctionStatus:  b.onAuctionStatus,
		models.EventAuctionWon:     b.onAuctionWon,
		models.EventOutbid:         b.onOutbid,
		models.EventPaymentUpdate:  b.onPaymentUpdate,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for event, h := range handlers {
		b.unsubs = append(b.unsubs, b.push.On(event, h))
	}
	b.unsubs = append(b.unsubs, b.push.OnReconnect(b.onReconnect))
}

func (b *Bridge) unsubscribe() {
	b.mu.Lock()
	unsubs := b.unsubs
	b.unsubs = nil
	b.mu.Unlock()

	for _, fn := range unsubs {
		fn()
	}
}

func (b *Bridge) decode(event string, payload json.RawMessage, v any) bool {
	if err := json.Unmarshal(payload, v); err != nil {
		b.log.Warn(context.Background(), "malformed push event", "event", event, "error", err)
		return false
	}
	return true
}

func (b *Bridge) userID() string {
	if u := b.store.State().Auth.User; u != nil {
		return u.ID
	}
	return ""
}

func (b *Bridge) onNewBid(payload json.RawMessage) {
	var ev models.NewBidEvent
	if !b.decode(models.EventNewBid, payload, &ev) || ev.AuctionID == "" {
		return
	}

	b.store.ApplyBid(ev.AuctionID, ev.Patch)
	if ev.Bid.ID != "" || ev.Bid.Amount != 0 {
		b.store.AddBid(ev.Bid, b.userID())
	}
}

func (b *Bridge) onAuctionStarted(payload json.RawMessage) {
	var ev models.AuctionStatusEvent
	if !b.decode(models.EventAuctionStarted, payload, &ev) || ev.AuctionID == "" {
		return
	}

	b.store.ApplyStatus(ev.AuctionID, models.AuctionLive, nil)
	b.notify(models.Notification{
		Type:    models.NotifyAuctionStarted,
		Title:   "Auction Started",
		Message: ev.Message,
		Data:    marshal(ev.Auction),
		Auction: auctionRef(ev.AuctionID, ev.Auction, ""),
	})
}

func (b *Bridge) onAuctionEnded(payload json.RawMessage) {
	var ev models.AuctionStatusEvent
	if !b.decode(models.EventAuctionEnded, payload, &ev) || ev.AuctionID == "" {
		return
	}

	b.settle(ev.AuctionID, models.AuctionEnded, ev.Winner)
	b.notify(models.Notification{
		Type:    models.NotifyAuctionEnded,
		Title:   "Auction Ended",
		Message: ev.Message,
		Data:    marshal(ev.Winner),
		Auction: auctionRef(ev.AuctionID, ev.Auction, "Auction"),
	})
}

func (b *Bridge) onAuctionStatus(payload json.RawMessage) {
	var ev models.AuctionStatusEvent
	if !b.decode(models.EventAuctionStatus, payload, &ev) || ev.AuctionID == "" {
		return
	}
	b.settle(ev.AuctionID, ev.Status, ev.Winner)
}

func (b *Bridge) settle(auctionID string, status models.AuctionStatus, winner *models.BidSummary) {
	b.store.ApplyStatus(auctionID, status, winner)
	if winner != nil && winner.Bidder.ID != "" {
		b.store.SettleBids(auctionID, winner.Bidder.ID)
	}
}

func (b *Bridge) onAuctionWon(payload json.RawMessage) {
	var ev models.AuctionWonEvent
	if !b.decode(models.EventAuctionWon, payload, &ev) {
		return
	}
	b.notify(models.Notification{
		Type:    models.NotifyAuctionWon,
		Title:   "Congratulations!",
		Message: ev.Message,
		Data:    marshal(ev.Auction),
		Auction: auctionRef(ev.AuctionID, ev.Auction, ""),
	})
}

func (b *Bridge) onOutbid(payload json.RawMessage) {
	var ev models.OutbidEvent
	if !b.decode(models.EventOutbid, payload, &ev) {
		return
	}
	b.notify(models.Notification{
		Type:    models.NotifyOutbid,
		Title:   "Outbid Alert",
		Message: ev.Message,
		Data:    marshal(map[string]float64{"newBidAmount": ev.NewBidAmount}),
		Auction: auctionRef(ev.AuctionID, nil, "Auction"),
	})
}

func (b *Bridge) onPaymentUpdate(payload json.RawMessage) {
	var ev models.PaymentUpdateEvent
	if !b.decode(models.EventPaymentUpdate, payload, &ev) {
		return
	}
	b.notify(models.Notification{
		Type:    models.NotifyPaymentUpdate,
		Title:   "Payment Update",
		Message: ev.Message,
		Data:    ev.Payment,
	})
}

func (b *Bridge) onReconnect() {
	if b.refresh == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()
	if err := b.refresh.Refresh(ctx); err != nil {
		b.log.Warn(ctx, "refetch after reconnect failed", "error", err)
	}
}

func (b *Bridge) notify(n models.Notification) {
	n.ID = b.newID()
	n.CreatedAt = b.now()
	b.store.AddNotification(n)

	b.qmu.Lock()
	defer b.qmu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.queue <- n:
	default:
		b.log.Warn(context.Background(), "notification sink is behind, dropping", "notification_id", n.ID)
	}
}

func (b *Bridge) forward() {
	defer close(b.done)
	for n := range b.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
		if err := b.sink.Publish(ctx, n); err != nil {
			b.log.Warn(ctx, "failed to forward notification", "notification_id", n.ID, "error", err)
		}
		cancel()
	}
}

func marshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return b
}

func auctionRef(id string, a *models.AuctionRef, fallbackTitle string) *models.AuctionRef {
	ref := &models.AuctionRef{ID: id, Title: fallbackTitle}
	if a != nil && a.Title != "" {
		ref.Title = a.Title
	}
	return ref
}
