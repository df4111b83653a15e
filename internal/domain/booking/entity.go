package booking

import (
	"strings"
	"time"

	"hotel-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound   = errs.NotFound("Booking not found")
	ErrNotOwner          = errs.Forbidden("Not authorized to cancel this booking")
	ErrAlreadyCancelled  = errs.InvalidState("Booking is already cancelled")
	ErrInvalidStatus     = errs.Validation("Invalid status")
	ErrRoomRequired      = errs.Validation("room is required")
	ErrInvalidRoomRef    = errs.Validation("internal room id must be a valid id")
	ErrHotelNameRequired = errs.Validation("hotelName is required")
	ErrInvalidDates      = errs.Validation("checkOutDate must be after checkInDate")
	ErrMissingDates      = errs.Validation("checkInDate and checkOutDate are required")
	ErrInvalidTotalPrice = errs.Validation("totalPrice must be greater than or equal to 0")
	ErrOwnerRequired     = errs.Validation("booking owner is required")

	ErrPaymentOrderMismatch = errs.Validation("Payment order does not match this booking")
	ErrConcurrentUpdate     = errs.InvalidState("Booking was changed by another request, please retry")
)

type Booking struct {
	id             string
	userID         string
	room           RoomRef
	hotelName      string
	hotelImage     string
	checkIn        time.Time
	checkOut       time.Time
	totalPrice     float64
	status         Status
	paymentStatus  PaymentStatus
	paymentOrderID string
	createdAt      time.Time
	updatedAt      time.Time
	// version is the stored revision this booking was loaded at.
	version int64
}

type Params struct {
	UserID     string
	Room       RoomRef
	HotelName  string
	HotelImage string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
}

// NewBooking performs no availability or overlap check; the caller-supplied price is stored as is.
func NewBooking(p Params, method PaymentMethod, now time.Time) (*Booking, error) {
	if p.UserID == "" {
		return nil, ErrOwnerRequired
	}
	if p.Room.ID == "" {
		return nil, ErrRoomRequired
	}
	hotelName := strings.TrimSpace(p.HotelName)
	if hotelName == "" {
		return nil, ErrHotelNameRequired
	}
	if p.CheckIn.IsZero() || p.CheckOut.IsZero() {
		return nil, ErrMissingDates
	}
	if !p.CheckOut.After(p.CheckIn) {
		return nil, ErrInvalidDates
	}
	if p.TotalPrice < 0 {
		return nil, ErrInvalidTotalPrice
	}

	status, paymentStatus := method.initialState()
	return &Booking{
		userID:        p.UserID,
		room:          p.Room,
		hotelName:     hotelName,
		hotelImage:    strings.TrimSpace(p.HotelImage),
		checkIn:       p.CheckIn,
		checkOut:      p.CheckOut,
		totalPrice:    p.TotalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type Snapshot struct {
	ID             string
	UserID         string
	Room           RoomRef
	HotelName      string
	HotelImage     string
	CheckIn        time.Time
	CheckOut       time.Time
	TotalPrice     float64
	Status         Status
	PaymentStatus  PaymentStatus
	PaymentOrderID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:             s.ID,
		userID:         s.UserID,
		room:           s.Room,
		hotelName:      s.HotelName,
		hotelImage:     s.HotelImage,
		checkIn:        s.CheckIn,
		checkOut:       s.CheckOut,
		totalPrice:     s.TotalPrice,
		status:         s.Status,
		paymentStatus:  s.PaymentStatus,
		paymentOrderID: s.PaymentOrderID,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		version:        s.Version,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.id,
		UserID:         b.userID,
		Room:           b.room,
		HotelName:      b.hotelName,
		HotelImage:     b.hotelImage,
		CheckIn:        b.checkIn,
		CheckOut:       b.checkOut,
		TotalPrice:     b.totalPrice,
		Status:         b.status,
		PaymentStatus:  b.paymentStatus,
		PaymentOrderID: b.paymentOrderID,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
		Version:        b.version,
	}
}

func (b *Booking) ID() string                   { return b.id }
func (b *Booking) UserID() string               { return b.userID }
func (b *Booking) Room() RoomRef                { return b.room }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) TotalPrice() float64          { return b.totalPrice }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID string) bool { return b.userID == userID }

// Cancel is the owner path: one-way to cancelled, never out of it.
func (b *Booking) Cancel(actorID string, now time.Time) error {
	if !b.IsOwnedBy(actorID) {
		return ErrNotOwner
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// OverrideStatus is the admin path. Any transition inside the enum is allowed.
func (b *Booking) OverrideStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	b.status = s
	b.updatedAt = now
	return nil
}

func (b *Booking) AttachPaymentOrder(orderID string, now time.Time) {
	b.paymentOrderID = orderID
	b.updatedAt = now
}

// ConfirmPayment records a verified payment for the order attached to this booking.
// It reports false when the booking was already paid, so a replayed verification changes nothing.
func (b *Booking) ConfirmPayment(orderID string, now time.Time) (bool, error) {
	if b.paymentOrderID == "" || b.paymentOrderID != orderID {
		return false, ErrPaymentOrderMismatch
	}
	if b.paymentStatus == PaymentPaid {
		return false, nil
	}
	b.paymentStatus = PaymentPaid
	if b.status == StatusPending {
		b.status = StatusConfirmed
	}
	b.updatedAt = now
	return true, nil
}
