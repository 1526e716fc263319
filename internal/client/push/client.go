package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

var (
	ErrNotConnected   = errors.New("push channel not connected")
	ErrConnectRefused = errors.New("push channel refused connection")
)

// Handler receives the raw JSON payload of an event.
type Handler func(payload json.RawMessage)

// Options configures a Client. Zero values fall back to the defaults the
// backend's browser client used.
type Options struct {
	URL               string
	ConnectTimeout    time.Duration
	ReconnectDelay    time.Duration
	ReconnectDelayMax time.Duration
	ReconnectAttempts uint64
	Dialer            *websocket.Dialer
	Logger            logging.Logger
}

func (o *Options) setDefaults() {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 30 * time.Second
	}
	if o.ReconnectDelay <= 0 {
		o.ReconnectDelay = time.Second
	}
	if o.ReconnectDelayMax <= 0 {
		o.ReconnectDelayMax = 5 * time.Second
	}
	if o.ReconnectAttempts == 0 {
		o.ReconnectAttempts = 5
	}
	if o.Dialer == nil {
		o.Dialer = websocket.DefaultDialer
	}
	if o.Logger == nil {
		o.Logger = logging.Nop{}
	}
}

type subscription struct {
	event string
	fn    Handler
}

type hook struct {
	fn func()
}

type Client struct {
	opts Options
	log  logging.Logger

	connectMu sync.Mutex
	writeMu   sync.Mutex

	mu       sync.Mutex
	conn     *websocket.Conn
	token    string
	closed   bool
	stop     context.CancelFunc
	handlers map[string][]*subscription
	hooks    []*hook
	rooms    map[string]struct{}
	muted    map[string]struct{}
}

func NewClient(opts Options) *Client {
	opts.setDefaults()
	return &Client{
		opts:     opts,
		log:      opts.Logger.With("component", "push"),
		handlers: make(map[string][]*subscription),
		rooms:    make(map[string]struct{}),
		muted:    make(map[string]struct{}),
	}
}

// Connect opens the channel and authenticates with token. It returns once
// the server has acknowledged the namespace connect. Calling Connect on a
// connected client is a no-op.
func (c *Client) Connect(ctx context.Context, token string) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	if c.stop != nil {
		c.stop()
	}
	runCtx, stop := context.WithCancel(context.Background())
	c.token = token
	c.closed = false
	c.stop = stop
	c.mu.Unlock()

	conn, hs, err := c.dial(ctx, token)
	if err != nil {
		return err
	}
	if !c.attach(runCtx, conn, hs) {
		return ErrNotConnected
	}
	c.log.Info(ctx, "push channel connected", "sid", hs.SID)
	return nil
}

// Connected reports whether a live connection is attached.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Disconnect closes the channel, stops any reconnect attempt and drops all
// handlers, hooks and room state.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.closed = true
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.handlers = make(map[string][]*subscription)
	c.hooks = nil
	c.rooms = make(map[string]struct{})
	c.muted = make(map[string]struct{})
	c.mu.Unlock()

	if conn != nil {
		_ = c.write(conn, disconnectPacket)
		_ = conn.Close()
	}
}

// On registers fn for event and returns a func that removes it.
func (c *Client) On(event string, fn Handler) func() {
	s := &subscription{event: event, fn: fn}

	c.mu.Lock()
	c.handlers[event] = append(c.handlers[event], s)
	c.mu.Unlock()

	return func() { c.off(s) }
}

// Off removes every handler registered for event.
func (c *Client) Off(event string) {
	c.mu.Lock()
	delete(c.handlers, event)
	c.mu.Unlock()
}

func (c *Client) off(s *subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.handlers[s.event]
	for i, h := range list {
		if h == s {
			c.handlers[s.event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// OnReconnect registers fn to run after every successful automatic
// reconnect, once rooms have been re-joined.
func (c *Client) OnReconnect(fn func()) func() {
	h := &hook{fn: fn}

	c.mu.Lock()
	c.hooks = append(c.hooks, h)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, x := range c.hooks {
			if x == h {
				c.hooks = append(c.hooks[:i:i], c.hooks[i+1:]...)
				return
			}
		}
	}
}

// JoinAuction subscribes to an auction room. Joining a room twice sends a
// single request; joining while disconnected only unmutes the room.
func (c *Client) JoinAuction(auctionID string) {
	c.mu.Lock()
	delete(c.muted, auctionID)
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()
		return
	}
	if _, ok := c.rooms[auctionID]; ok {
		c.mu.Unlock()
		return
	}
	c.rooms[auctionID] = struct{}{}
	c.mu.Unlock()

	if err := c.emitOn(conn, models.EventJoinAuction, roomPayload(auctionID)); err != nil {
		c.log.Warn(context.Background(), "join auction failed", "auction_id", auctionID, "error", err)
	}
}

// LeaveAuction leaves an auction room and mutes its events. The request is
// only sent when connected and the room was joined.
func (c *Client) LeaveAuction(auctionID string) {
	c.mu.Lock()
	conn := c.conn
	_, joined := c.rooms[auctionID]
	delete(c.rooms, auctionID)
	c.muted[auctionID] = struct{}{}
	c.mu.Unlock()

	if conn == nil || !joined {
		return
	}
	if err := c.emitOn(conn, models.EventLeaveAuction, roomPayload(auctionID)); err != nil {
		c.log.Warn(context.Background(), "leave auction failed", "auction_id", auctionID, "error", err)
	}
}

// Rooms returns the joined auction ids.
func (c *Client) Rooms() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		out = append(out, id)
	}
	return out
}

// Emit sends a named event with an optional payload.
func (c *Client) Emit(event string, payload any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}
	return c.emitOn(conn, event, payload)
}

func roomPayload(auctionID string) map[string]string {
	return map[string]string{"auctionId": auctionID}
}

func (c *Client) emitOn(conn *websocket.Conn, event string, payload any) error {
	b, err := encodeEvent(event, payload)
	if err != nil {
		return err
	}
	return c.write(conn, b)
}

func (c *Client) write(conn *websocket.Conn, b []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(c.opts.ConnectTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, b)
}

// endpoint turns the configured base URL into the Engine.IO websocket URL.
func endpoint(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "parsing push url %q", base)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported push url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/socket.io/"
	q := u.Query()
	q.Set("EIO", "4")
	q.Set("transport", "websocket")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// dial performs the WebSocket dial plus the Engine.IO and Socket.IO
// handshakes.
func (c *Client) dial(ctx context.Context, token string) (*websocket.Conn, handshake, error) {
	u, err := endpoint(c.opts.URL)
	if err != nil {
		return nil, handshake{}, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	conn, _, err := c.opts.Dialer.DialContext(dialCtx, u, nil)
	if err != nil {
		return nil, handshake{}, errors.Wrapf(err, "dialing %s", u)
	}

	hs, err := c.handshake(dialCtx, conn, token)
	if err != nil {
		_ = conn.Close()
		return nil, handshake{}, err
	}
	return conn, hs, nil
}

func (c *Client) handshake(ctx context.Context, conn *websocket.Conn, token string) (handshake, error) {
	deadline, _ := ctx.Deadline()
	if err := conn.SetReadDeadline(deadline); err != nil {
		return handshake{}, err
	}

	p, err := readPacket(conn)
	if err != nil {
		return handshake{}, errors.Wrap(err, "reading open packet")
	}
	if p.kind != kindOpen {
		return handshake{}, errors.Wrapf(errMalformed, "expected open packet, got kind %d", p.kind)
	}
	hs := p.open

	b, err := encodeConnect(token)
	if err != nil {
		return handshake{}, err
	}
	if err := c.write(conn, b); err != nil {
		return handshake{}, errors.Wrap(err, "sending connect")
	}

	for {
		p, err := readPacket(conn)
		if err != nil {
			return handshake{}, errors.Wrap(err, "awaiting connect ack")
		}
		switch p.kind {
		case kindConnect:
			return hs, conn.SetReadDeadline(time.Time{})
		case kindConnectError:
			return handshake{}, errors.Wrap(ErrConnectRefused, connectErrorMessage(p.data))
		case kindPing:
			if err := c.write(conn, pongPacket); err != nil {
				return handshake{}, err
			}
		}
	}
}

func readPacket(conn *websocket.Conn) (packet, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return packet{}, err
	}
	return decodePacket(msg)
}

func (c *Client) attach(ctx context.Context, conn *websocket.Conn, hs handshake) bool {
	c.mu.Lock()
	if c.closed || c.conn != nil || ctx.Err() != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return false
	}
	c.conn = conn
	c.mu.Unlock()

	go c.readLoop(ctx, conn, hs.readWait())
	return true
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, wait time.Duration) {
	for {
		if wait > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(wait))
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			c.dropped(ctx, conn, err, true)
			return
		}

		p, err := decodePacket(msg)
		if err != nil {
			c.log.Warn(ctx, "skipping push packet", "error", err)
			continue
		}

		switch p.kind {
		case kindPing:
			if err := c.write(conn, pongPacket); err != nil {
				c.dropped(ctx, conn, err, true)
				return
			}
		case kindEvent:
			c.dispatch(p.event, p.data)
		case kindClose:
			c.dropped(ctx, conn, errors.New("server closed transport"), true)
			return
		case kindDisconnect:
			c.dropped(ctx, conn, errors.New("server disconnected namespace"), false)
			return
		}
	}
}

func (c *Client) dispatch(event string, data json.RawMessage) {
	auctionID := models.EventAuctionID(data)

	c.mu.Lock()
	if _, muted := c.muted[auctionID]; auctionID != "" && muted {
		c.mu.Unlock()
		return
	}
	subs := append([]*subscription(nil), c.handlers[event]...)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(data)
	}
}

// dropped detaches conn and, when reconnect is set and the client was not
// closed on purpose, starts reconnecting.
func (c *Client) dropped(ctx context.Context, conn *websocket.Conn, cause error, reconnect bool) {
	_ = conn.Close()

	c.mu.Lock()
	if c.conn != conn {
		c.mu.Unlock()
		return
	}
	c.conn = nil
	closed := c.closed
	token := c.token
	c.mu.Unlock()

	if closed {
		return
	}
	c.log.Warn(ctx, "push channel disconnected", "error", cause)
	if reconnect {
		go c.reconnect(ctx, token)
	}
}

func (c *Client) backoff() retry.Backoff {
	b := retry.NewExponential(c.opts.ReconnectDelay)
	b = retry.WithCappedDuration(c.opts.ReconnectDelayMax, b)
	b = retry.WithMaxRetries(c.opts.ReconnectAttempts-1, b)
	return b
}

func (c *Client) reconnect(ctx context.Context, token string) {
	var attempt int
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++
		conn, hs, err := c.dial(ctx, token)
		if err != nil {
			c.log.Debug(ctx, "reconnect attempt failed", "attempt", attempt, "error", err)
			if errors.Is(err, ErrConnectRefused) {
				return err
			}
			return retry.RetryableError(err)
		}
		if !c.attach(ctx, conn, hs) {
			return context.Canceled
		}
		return nil
	})
	if err != nil {
		if ctx.Err() == nil {
			c.log.Error(ctx, "push channel reconnect gave up", "attempts", attempt, "error", err)
		}
		return
	}

	c.log.Info(ctx, "push channel reconnected", "attempts", attempt)

	c.mu.Lock()
	conn := c.conn
	rooms := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		rooms = append(rooms, id)
	}
	hooks := append([]*hook(nil), c.hooks...)
	c.mu.Unlock()

	if conn != nil {
		for _, id := range rooms {
			if err := c.emitOn(conn, models.EventJoinAuction, roomPayload(id)); err != nil {
				c.log.Warn(ctx, "rejoin auction failed", "auction_id", id, "error", err)
			}
		}
	}
	for _, h := range hooks {
		h.fn()
	}
}
