package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

type CreateBookingInput struct {
	RoomKind      string
	RoomID        string
	HotelName     string
	HotelImage    string
	CheckIn       time.Time
	CheckOut      time.Time
	TotalPrice    float64
	PaymentMethod string
}

type BookingCommands interface {
	Create(ctx context.Context, identity shared.Identity, input CreateBookingInput) (string, error)
	Cancel(ctx context.Context, identity shared.Identity, id string) error
	UpdateStatus(ctx context.Context, identity shared.Identity, id, status string) error
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingRepository, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{bookings: bookings, clock: clk}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, identity shared.Identity, input CreateBookingInput) (string, error) {
	if err := shared.RequireUser(identity); err != nil {
		return "", err
	}
	ref, err := booking.NewRoomRef(input.RoomKind, input.RoomID)
	if err != nil {
		return "", err
	}
	method, err := booking.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return "", err
	}

	bk, err := booking.NewBooking(booking.Params{
		UserID:     identity.UserID,
		Room:       ref,
		HotelName:  input.HotelName,
		HotelImage: input.HotelImage,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		TotalPrice: input.TotalPrice,
	}, method, b.clock.Now())
	if err != nil {
		return "", err
	}

	id, err := b.bookings.Create(ctx, bk)
	if err != nil {
		return "", err
	}
	slog.Info("booking created", "booking_id", id, "user_id", identity.UserID, "status", bk.Status().String())
	return id, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, identity shared.Identity, id string) error {
	if err := shared.RequireUser(identity); err != nil {
		return err
	}
	bk, err := loadBooking(ctx, b.bookings, id)
	if err != nil {
		return err
	}
	if err := bk.Cancel(identity.UserID, b.clock.Now()); err != nil {
		return err
	}
	return saveBooking(ctx, b.bookings, bk)
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, identity shared.Identity, id, status string) error {
	if err := shared.RequireAdmin(identity); err != nil {
		return err
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return err
	}
	bk, err := loadBooking(ctx, b.bookings, id)
	if err != nil {
		return err
	}
	if err := bk.OverrideStatus(st, b.clock.Now()); err != nil {
		return err
	}
	return saveBooking(ctx, b.bookings, bk)
}

func loadBooking(ctx context.Context, repo BookingRepository, id string) (*booking.Booking, error) {
	if !ident.Valid(id) {
		return nil, booking.ErrBookingNotFound
	}
	bk, err := repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return bk, nil
}

func saveBooking(ctx context.Context, repo BookingRepository, bk *booking.Booking) error {
	if err := repo.Save(ctx, bk); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return booking.ErrBookingNotFound
		case infra.IsKind(err, infra.KindConflict):
			return booking.ErrConcurrentUpdate
		}
		return err
	}
	return nil
}
