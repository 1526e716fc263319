package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

// Cars lists cars: every car (default), approved ones, or the user's own.
func (a *App) Cars(ctx context.Context, scope string) error {
	var (
		cars []models.Car
		err  error
	)
	switch scope {
	case "", "all":
		cars, err = a.carService.List(ctx, models.CarFilter{})
	case "approved":
		cars, err = a.carService.Approved(ctx)
	case "mine":
		cars, err = a.carService.Mine(ctx)
	default:
		return fmt.Errorf("unknown car list %q, want all, approved or mine", scope)
	}
	if err != nil {
		return err
	}
	renderCars(a.out, cars)
	return nil
}

func (a *App) Payments(ctx context.Context) error {
	payments, err := a.paymentService.Mine(ctx)
	if err != nil {
		return err
	}
	renderPayments(a.out, payments)
	return nil
}

// Pay records a payment for a won auction.
func (a *App) Pay(ctx context.Context, auctionID, amount string) error {
	v, err := parseAmount(amount)
	if err != nil {
		return err
	}
	method, err := readLine(a.reader, a.out, "Payment method (empty for card)")
	if err != nil {
		return err
	}
	if method == "" {
		method = "card"
	}

	p, err := a.paymentService.Pay(ctx, models.PaymentInput{AuctionID: auctionID, Amount: v, PaymentMethod: method})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Payment %s: %s, %s\n", p.ID, money(p.Amount), p.Status)
	return nil
}
