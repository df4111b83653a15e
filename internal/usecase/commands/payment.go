package commands

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errs.Validation("Invalid signature sent!")
	ErrInvalidAmount    = errs.Validation("amount must be a positive integer in minor units")
	ErrPaymentNotOwner  = errs.Forbidden("Not authorized to pay for this booking")
)

type CreateIntentInput struct {
	Amount    int64
	Currency  string
	BookingID string
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	BookingID string
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, identity shared.Identity, input CreateIntentInput) (*PaymentOrder, error)
	Verify(ctx context.Context, identity shared.Identity, input VerifyPaymentInput) error
}

type paymentCommandsImpl struct {
	provider        PaymentProvider
	bookings        BookingRepository
	transactions    TransactionRepository
	clock           clock.Clock
	defaultCurrency string
}

func NewPaymentCommands(
	provider PaymentProvider,
	bookings BookingRepository,
	transactions TransactionRepository,
	clk clock.Clock,
	defaultCurrency string,
) PaymentCommands {
	return &paymentCommandsImpl{
		provider:        provider,
		bookings:        bookings,
		transactions:    transactions,
		clock:           clk,
		defaultCurrency: defaultCurrency,
	}
}

func (p *paymentCommandsImpl) CreateIntent(ctx context.Context, identity shared.Identity, input CreateIntentInput) (*PaymentOrder, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = p.defaultCurrency
	}

	var bk *booking.Booking
	if input.BookingID != "" {
		var err error
		if bk, err = p.ownedBooking(ctx, identity, input.BookingID); err != nil {
			return nil, err
		}
	}

	order, err := p.provider.CreateOrder(ctx, OrderRequest{
		Amount:   input.Amount,
		Currency: currency,
		Receipt:  "receipt_" + uuid.NewString()[:8],
	})
	if err != nil {
		return nil, errs.Upstream(err, "failed to create payment order")
	}

	if bk != nil {
		bk.AttachPaymentOrder(order.ID, p.clock.Now())
		if err := saveBooking(ctx, p.bookings, bk); err != nil {
			return nil, err
		}
	}
	slog.Info("payment order created", "provider", p.provider.Name(), "order_id", order.ID, "user_id", identity.UserID)
	return order, nil
}

// Verify never alters the booking when the signature or the order does not match.
func (p *paymentCommandsImpl) Verify(ctx context.Context, identity shared.Identity, input VerifyPaymentInput) error {
	if err := shared.RequireUser(identity); err != nil {
		return err
	}
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return ErrInvalidSignature
	}
	if !p.provider.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		slog.Warn("payment signature mismatch", "provider", p.provider.Name(), "order_id", input.OrderID)
		return ErrInvalidSignature
	}
	if input.BookingID == "" {
		return nil
	}

	bk, err := p.ownedBooking(ctx, identity, input.BookingID)
	if err != nil {
		return err
	}
	now := p.clock.Now()
	changed, err := bk.ConfirmPayment(input.OrderID, now)
	if err != nil {
		slog.Warn("payment order mismatch", "booking_id", bk.ID(), "order_id", input.OrderID)
		return err
	}
	if !changed {
		slog.Info("payment already recorded", "booking_id", bk.ID(), "order_id", input.OrderID)
		return nil
	}
	if err := saveBooking(ctx, p.bookings, bk); err != nil {
		return err
	}

	tx, err := transaction.NewTransaction(identity.UserID, bk.ID(), bk.TotalPrice(), transaction.TypePayment, transaction.StatusSuccess, now)
	if err != nil {
		return err
	}
	if _, err := p.transactions.Create(ctx, tx); err != nil {
		// The booking is already paid; the ledger row is best effort.
		slog.Error("failed to record payment transaction", "booking_id", bk.ID(), "error", err.Error())
	}
	return nil
}

func (p *paymentCommandsImpl) ownedBooking(ctx context.Context, identity shared.Identity, id string) (*booking.Booking, error) {
	bk, err := loadBooking(ctx, p.bookings, id)
	if err != nil {
		return nil, err
	}
	if !bk.IsOwnedBy(identity.UserID) {
		return nil, ErrPaymentNotOwner
	}
	return bk, nil
}
