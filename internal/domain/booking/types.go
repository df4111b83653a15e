package booking

import (
	"strings"

	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Statuses lists the enum in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMethod decides the initial state of a new booking.
type PaymentMethod string

const (
	PaymentMethodMock     PaymentMethod = "mock"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaymentMethodMock:
		return PaymentMethodMock, nil
	case PaymentMethodRazorpay:
		return PaymentMethodRazorpay, nil
	default:
		return "", errs.Validationf("unsupported payment method %q", s)
	}
}

func (m PaymentMethod) initialState() (Status, PaymentStatus) {
	if m == PaymentMethodRazorpay {
		return StatusPending, PaymentPending
	}
	return StatusConfirmed, PaymentPaid
}

type RoomKind string

const (
	RoomInternal RoomKind = "internal"
	RoomExternal RoomKind = "external"
)

// RoomRef points either at a room document or at an opaque external catalog id.
type RoomRef struct {
	Kind RoomKind
	ID   string
}

func NewRoomRef(kind, id string) (RoomRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RoomRef{}, ErrRoomRequired
	}
	switch RoomKind(kind) {
	case RoomInternal:
		if !ident.Valid(id) {
			return RoomRef{}, ErrInvalidRoomRef
		}
		return RoomRef{Kind: RoomInternal, ID: id}, nil
	case RoomExternal, "":
		return RoomRef{Kind: RoomExternal, ID: id}, nil
	default:
		return RoomRef{}, errs.Validationf("unknown room kind %q", kind)
	}
}

func (r RoomRef) IsInternal() bool { return r.Kind == RoomInternal }

// Key identifies the reference across both id spaces.
func (r RoomRef) Key() string { return string(r.Kind) + ":" + r.ID }
