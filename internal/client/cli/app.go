package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/carbid/internal/client/api"
	"github.com/dmitrijs2005/carbid/internal/client/config"
	"github.com/dmitrijs2005/carbid/internal/client/notify"
	"github.com/dmitrijs2005/carbid/internal/client/push"
	"github.com/dmitrijs2005/carbid/internal/client/repositories/session"
	"github.com/dmitrijs2005/carbid/internal/client/services"
	"github.com/dmitrijs2005/carbid/internal/client/storage"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *store.Store

	authService         services.AuthService
	auctionService      services.AuctionService
	bidService          services.BidService
	wishlistService     services.WishlistService
	notificationService services.NotificationService
	carService          services.CarService
	paymentService      services.PaymentService

	closers []func() error
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	log := logging.New(c.LogFormat, c.LogLevel, os.Stderr)

	sessions, closeSessions, err := openSessions(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session storage", "backend", c.SessionBackend, "error", err)
		return nil, err
	}

	sink, err := notify.New(notify.Options{
		Kind:    c.NotifySink,
		LogPath: c.NotifyLogPath,
		AMQPURL: c.AMQPURL,
		Queue:   c.NotifyQueue,
	})
	if err != nil {
		_ = closeSessions()
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	pushClient := push.NewClient(push.Options{URL: c.PushURL, Logger: log})
	st := store.New()

	auctions := services.NewAuctionService(apiClient, apiClient, pushClient, st, log)
	bridge := services.NewBridge(pushClient, st, sink, auctions, log)

	a := &App{
		config:              c,
		log:                 log,
		store:               st,
		authService:         services.NewAuthService(apiClient, sessions, bridge, st, log),
		auctionService:      auctions,
		bidService:          services.NewBidService(apiClient, st, log, c.BidConfirmTimeout),
		wishlistService:     services.NewWishlistService(apiClient, st),
		notificationService: services.NewNotificationService(apiClient, st),
		carService:          services.NewCarService(apiClient),
		paymentService:      services.NewPaymentService(apiClient),
		closers:             []func() error{bridge.Close, closeSessions},
		reader:              bufio.NewReader(os.Stdin),
		out:                 os.Stdout,
		now:                 time.Now,
	}
	return a, nil
}

// openSessions opens the configured session repository and returns a func
// releasing its connection.
func openSessions(ctx context.Context, c *config.Config) (session.Repository, func() error, error) {
	switch c.SessionBackend {
	case config.SessionRedis:
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisRepository(rdb, ""), rdb.Close, nil
	case "", config.SessionSQLite:
		db, err := storage.InitDatabase(ctx, c.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return session.NewSQLiteRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
}

// Run restores the saved session and blocks in the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to carbid CLI (type 'help' for commands)")

	if err := a.authService.Restore(ctx); err == nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.username())
	}

	unsubscribe := a.store.Subscribe(a.watch())
	defer unsubscribe()

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) Close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.log.Warn(context.Background(), "error during shutdown", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Auth.IsAuthenticated
}

func (a *App) username() string {
	if u := a.store.State().Auth.User; u != nil {
		return u.Username
	}
	return ""
}

func (a *App) getStatus() string {
	st := a.store.State()

	s := a.username()
	if id := st.Auctions.Viewing; id != "" {
		s = join(s, "@"+id)
	}
	if n := st.Notifications.UnreadCount; n > 0 {
		s = join(s, fmt.Sprintf("%d unread", n))
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
