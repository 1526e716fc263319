package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
)

// Auctions fetches and prints one of the auction lists. scope is one of
// all (default), live, upcoming or mine.
func (a *App) Auctions(ctx context.Context, scope string) error {
	var (
		err  error
		list func(store.AuctionsState) []models.Auction
	)
	switch scope {
	case "", "all":
		err = a.auctionService.List(ctx, a.store.State().Auctions.Filters)
		list = func(s store.AuctionsState) []models.Auction { return s.All }
	case "live":
		err = a.auctionService.Live(ctx)
		list = func(s store.AuctionsState) []models.Auction { return s.Live }
	case "upcoming":
		err = a.auctionService.Upcoming(ctx)
		list = func(s store.AuctionsState) []models.Auction { return s.Upcoming }
	case "mine":
		err = a.auctionService.Mine(ctx)
		list = func(s store.AuctionsState) []models.Auction { return s.Mine }
	default:
		return fmt.Errorf("unknown auction list %q, want all, live, upcoming or mine", scope)
	}
	if err != nil {
		return err
	}

	renderAuctions(a.out, list(a.store.State().Auctions), a.now())
	return nil
}

// Show opens auction id: it joins the auction's room, so later bids are
// printed as they arrive, and prints the auction with its recent bids.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.auctionService.View(ctx, id); err != nil {
		return err
	}
	if err := a.bidService.ForAuction(ctx, id); err != nil {
		a.log.Warn(ctx, "failed to fetch auction bids", "auction_id", id, "error", err)
	}
	if err := a.bidService.Highest(ctx, id); err != nil {
		a.log.Warn(ctx, "failed to fetch highest bid", "auction_id", id, "error", err)
	}

	st := a.store.State()
	if st.Auctions.Current == nil {
		return fmt.Errorf("auction %s is not available", id)
	}
	renderAuction(a.out, *st.Auctions.Current, st.Bids, a.now())
	if a.isLoggedIn() {
		if in, err := a.wishlistService.Check(ctx, id); err == nil && in {
			fmt.Fprintln(a.out, "(in your wishlist)")
		}
	}
	return nil
}

// Leave closes the open auction.
func (a *App) Leave(context.Context) error {
	a.auctionService.Leave()
	return nil
}

// Sell walks the user through listing a car: it registers the car, then
// opens an auction for it.
func (a *App) Sell(ctx context.Context) error {
	if !a.isLoggedIn() {
		return fmt.Errorf("please log in to sell a car")
	}

	var car models.CarInput
	text := []struct {
		prompt string
		dst    *string
	}{
		{"Make", &car.Make},
		{"Model", &car.Model},
		{"Body type (sedan, suv, ...)", &car.BodyType},
		{"Condition (new, used, ...)", &car.Condition},
		{"Color", &car.Color},
		{"VIN (optional)", &car.VIN},
	}
	for _, f := range text {
		v, err := readLine(a.reader, a.out, f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	car.VIN = strings.ToUpper(car.VIN)

	year, err := a.promptInt("Year")
	if err != nil {
		return err
	}
	car.Year = year

	mileage, err := a.promptInt("Mileage (km)")
	if err != nil {
		return err
	}
	car.Mileage = mileage

	price, err := a.promptFloat("Starting price")
	if err != nil {
		return err
	}
	car.StartingPrice = price

	desc, err := ReadText(a.reader, a.out, "Description")
	if err != nil {
		return err
	}
	car.Description = desc
	car.Title = strings.TrimSpace(fmt.Sprintf("%d %s %s", car.Year, car.Make, car.Model))

	start, end, err := a.promptSchedule()
	if err != nil {
		return err
	}

	auction, err := a.auctionService.Sell(ctx, car, models.AuctionInput{
		Title:       car.Title,
		Description: desc,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Auction %s created: %s, %s to %s\n",
		auction.ID, auction.Title, auction.StartTime.Local().Format(timeLayout), auction.EndTime.Local().Format(timeLayout))
	return nil
}

// promptSchedule reads the start time (empty means now) and the duration
// in hours (empty means 24).
func (a *App) promptSchedule() (time.Time, time.Time, error) {
	s, err := readLine(a.reader, a.out, "Start time ("+timeLayout+", empty for now)")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := a.now()
	if s != "" {
		start, err = time.ParseInLocation(timeLayout, s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q", s)
		}
	}

	s, err = readLine(a.reader, a.out, "Duration in hours (empty for 24)")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hours := 24.0
	if s != "" {
		hours, err = strconv.ParseFloat(s, 64)
		if err != nil || hours <= 0 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid duration %q", s)
		}
	}
	return start, start.Add(time.Duration(hours * float64(time.Hour))), nil
}

func (a *App) promptInt(prompt string) (int, error) {
	s, err := readLine(a.reader, a.out, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func (a *App) promptFloat(prompt string) (float64, error) {
	s, err := readLine(a.reader, a.out, prompt)
	if err != nil {
		return 0, err
	}
	return parseAmount(s)
}

// parseAmount accepts "1200", "1,200.50" and "$1200".
func parseAmount(s string) (float64, error) {
	clean := strings.NewReplacer(",", "", "$", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
