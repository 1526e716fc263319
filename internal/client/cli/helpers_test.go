package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var alice = models.User{ID: "u1", Username: "alice", Email: "alice@example.com", FullName: "Alice A", MobileNumber: "5551234567"}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := &App{
		log:    logging.Nop{},
		store:  store.New(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
		now:    func() time.Time { return testNow },
	}
	return a, &out
}

func signIn(a *App) {
	a.store.SetSession(store.OpLogin, "tok", alice)
}

// stubInputs replays answers for readLine in order and returns password
// from readSecret.
func stubInputs(t *testing.T, password string, answers ...string) *[]string {
	t.Helper()
	origLine, origSecret := readLine, readSecret
	t.Cleanup(func() {
		readLine = origLine
		readSecret = origSecret
	})

	var prompts []string
	readLine = func(_ *bufio.Reader, _ io.Writer, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		v := answers[0]
		answers = answers[1:]
		return v, nil
	}
	readSecret = func(io.Writer, string) ([]byte, error) { return []byte(password), nil }
	return &prompts
}

type fakeAuth struct {
	st *store.Store

	loginIn    models.LoginInput
	registerIn models.RegisterInput
	err        error

	restoreCalled bool
	logoutCalled  bool
}

func (f *fakeAuth) Login(_ context.Context, in models.LoginInput) error {
	f.loginIn = in
	if f.err != nil {
		return f.err
	}
	f.st.SetSession(store.OpLogin, "tok", alice)
	return nil
}

func (f *fakeAuth) Register(_ context.Context, in models.RegisterInput) error {
	f.registerIn = in
	if f.err != nil {
		return f.err
	}
	u := alice
	u.Username = in.Username
	f.st.SetSession(store.OpRegister, "tok", u)
	return nil
}

func (f *fakeAuth) Restore(context.Context) error {
	f.restoreCalled = true
	return f.err
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	if f.err != nil {
		return f.err
	}
	f.st.Reset()
	return nil
}

func (f *fakeAuth) Profile(context.Context) error {
	if f.err != nil {
		return f.err
	}
	u := alice
	u.FullName = "Alice Anders"
	f.st.SetUser(store.OpProfile, u)
	return nil
}

func (f *fakeAuth) UpdateProfile(context.Context, models.ProfileUpdate) error { return f.err }

type fakeAuctions struct {
	st       *store.Store
	auctions []models.Auction
	err      error

	listFilter models.AuctionFilter
	viewed     string
	left       bool
	sellCar    models.CarInput
	sellIn     models.AuctionInput
}

func (f *fakeAuctions) receive(op store.Op) error {
	if f.err != nil {
		return f.err
	}
	f.st.ReceiveAuctions(op, f.auctions)
	return nil
}

func (f *fakeAuctions) List(_ context.Context, filter models.AuctionFilter) error {
	f.listFilter = filter
	return f.receive(store.OpFetchAuctions)
}
func (f *fakeAuctions) Live(context.Context) error     { return f.receive(store.OpFetchLive) }
func (f *fakeAuctions) Upcoming(context.Context) error { return f.receive(store.OpFetchUpcoming) }
func (f *fakeAuctions) Mine(context.Context) error     { return f.receive(store.OpFetchMine) }

func (f *fakeAuctions) View(_ context.Context, id string) error {
	f.viewed = id
	f.st.ViewAuction(id)
	if f.err != nil {
		return f.err
	}
	for _, a := range f.auctions {
		if a.ID == id {
			f.st.ReceiveAuction(a)
		}
	}
	return nil
}

func (f *fakeAuctions) Leave() {
	f.left = true
	f.st.LeaveAuction()
}

func (f *fakeAuctions) Refresh(context.Context) error { return nil }

func (f *fakeAuctions) Create(_ context.Context, in models.AuctionInput) (models.Auction, error) {
	return models.Auction{ID: "new", Title: in.Title, StartTime: in.StartTime, EndTime: in.EndTime}, f.err
}

func (f *fakeAuctions) Sell(ctx context.Context, car models.CarInput, in models.AuctionInput) (models.Auction, error) {
	f.sellCar, f.sellIn = car, in
	return f.Create(ctx, in)
}

type fakeBids struct {
	st  *store.Store
	err error

	placedID     string
	placedAmount float64
	forAuction   []models.Bid
}

func (f *fakeBids) Mine(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.st.ReceiveMyBids(f.forAuction)
	return nil
}

func (f *fakeBids) ForAuction(_ context.Context, id string) error {
	f.st.ReceiveAuctionBids(id, f.forAuction)
	return nil
}

func (f *fakeBids) Highest(_ context.Context, id string) error {
	if len(f.forAuction) > 0 {
		b := f.forAuction[0]
		f.st.ReceiveHighestBid(id, &b)
	}
	return nil
}

func (f *fakeBids) Place(_ context.Context, id string, amount float64) (models.Bid, error) {
	f.placedID, f.placedAmount = id, amount
	if f.err != nil {
		return models.Bid{}, f.err
	}
	f.st.ApplyBid(id, models.BidPatch{Amount: amount})
	return models.Bid{ID: "b1", Amount: amount}, nil
}

type fakeWishlist struct {
	st    *store.Store
	items []models.WishlistItem
	in    bool
	err   error

	action string
	id     string
}

func (f *fakeWishlist) Fetch(context.Context) error {
	f.action = "fetch"
	f.st.ReceiveWishlist(f.items)
	return f.err
}

func (f *fakeWishlist) Add(_ context.Context, id string) error {
	f.action, f.id = "add", id
	return f.err
}

func (f *fakeWishlist) Remove(_ context.Context, id string) error {
	f.action, f.id = "remove", id
	return f.err
}

func (f *fakeWishlist) Check(_ context.Context, id string) (bool, error) {
	f.action, f.id = "check", id
	return f.in, f.err
}

func (f *fakeWishlist) Clear(context.Context) error {
	f.action = "clear"
	return f.err
}

type fakeNotifications struct {
	st    *store.Store
	items []models.Notification
	err   error

	readID  string
	readAll bool
}

func (f *fakeNotifications) Fetch(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.st.ReceiveNotifications(f.items)
	return nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id string) error {
	f.readID = id
	f.st.MarkRead(id)
	return f.err
}

func (f *fakeNotifications) MarkAllRead(context.Context) error {
	f.readAll = true
	f.st.MarkAllRead()
	return f.err
}

type fakeCars struct {
	cars  []models.Car
	err   error
	scope string
}

func (f *fakeCars) List(context.Context, models.CarFilter) ([]models.Car, error) {
	f.scope = "all"
	return f.cars, f.err
}

func (f *fakeCars) Approved(context.Context) ([]models.Car, error) {
	f.scope = "approved"
	return f.cars, f.err
}

func (f *fakeCars) Mine(context.Context) ([]models.Car, error) {
	f.scope = "mine"
	return f.cars, f.err
}

func (f *fakeCars) Get(context.Context, string) (models.Car, error) { return models.Car{}, f.err }
func (f *fakeCars) Create(context.Context, models.CarInput) (models.Car, error) {
	return models.Car{}, f.err
}
func (f *fakeCars) Update(context.Context, string, models.CarInput) (models.Car, error) {
	return models.Car{}, f.err
}
func (f *fakeCars) Delete(context.Context, string) error { return f.err }
func (f *fakeCars) Categories(context.Context) ([]models.Category, error) {
	return nil, f.err
}

type fakePayments struct {
	payments []models.Payment
	err      error
	in       models.PaymentInput
}

func (f *fakePayments) Pay(_ context.Context, in models.PaymentInput) (models.Payment, error) {
	f.in = in
	return models.Payment{ID: "p1", Amount: in.Amount, Status: "completed"}, f.err
}

func (f *fakePayments) Mine(context.Context) ([]models.Payment, error) { return f.payments, f.err }

func (f *fakePayments) Get(context.Context, string) (models.Payment, error) {
	return models.Payment{}, f.err
}
