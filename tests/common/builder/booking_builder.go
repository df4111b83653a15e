//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingBuilder struct {
	ID             string
	UserID         string
	UserName       string
	UserEmail      string
	RoomKind       booking.RoomKind
	RoomID         string
	HotelName      string
	HotelImage     string
	CheckIn        time.Time
	CheckOut       time.Time
	TotalPrice     float64
	Status         booking.Status
	PaymentStatus  booking.PaymentStatus
	PaymentMethod  string
	PaymentOrderID string
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            primitive.NewObjectID().Hex(),
		UserID:        primitive.NewObjectID().Hex(),
		UserName:      "Test Guest",
		UserEmail:     "guest@example.com",
		RoomKind:      booking.RoomInternal,
		RoomID:        primitive.NewObjectID().Hex(),
		HotelName:     "Seaside Palace",
		HotelImage:    "https://img.example.com/seaside.jpg",
		CheckIn:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice:    7000,
		Status:        booking.StatusConfirmed,
		PaymentStatus: booking.PaymentPaid,
		PaymentMethod: string(booking.PaymentMethodMock),
		CreatedAt:     time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) snapshot() booking.Snapshot {
	return booking.Snapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		Room:           booking.RoomRef{Kind: b.RoomKind, ID: b.RoomID},
		HotelName:      b.HotelName,
		HotelImage:     b.HotelImage,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		PaymentOrderID: b.PaymentOrderID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

// Build methods
func (b *BookingBuilder) BuildParams() booking.Params {
	return booking.Params{
		UserID:     b.UserID,
		Room:       booking.RoomRef{Kind: b.RoomKind, ID: b.RoomID},
		HotelName:  b.HotelName,
		HotelImage: b.HotelImage,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.Reconstruct(b.snapshot())
}

func (b *BookingBuilder) BuildDocument() document.Booking {
	return document.FromBooking(b.BuildStored())
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomKind:      string(b.RoomKind),
		RoomID:        b.RoomID,
		HotelName:     b.HotelName,
		HotelImage:    b.HotelImage,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		TotalPrice:    b.TotalPrice,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Room:          reqdto.RoomRefInput{Kind: string(b.RoomKind), ID: b.RoomID},
		HotelName:     b.HotelName,
		HotelImage:    b.HotelImage,
		CheckInDate:   reqdto.Date{Time: b.CheckIn},
		CheckOutDate:  reqdto.Date{Time: b.CheckOut},
		TotalPrice:    ptr.To(b.TotalPrice),
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		User:           queries.BookingOwner{ID: b.UserID, Name: b.UserName, Email: b.UserEmail},
		Room:           queries.RoomRefView{Kind: string(b.RoomKind), ID: b.RoomID},
		HotelName:      b.HotelName,
		HotelImage:     b.HotelImage,
		CheckInDate:    b.CheckIn,
		CheckOutDate:   b.CheckOut,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status.String(),
		PaymentStatus:  string(b.PaymentStatus),
		PaymentOrderID: b.PaymentOrderID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithExternalRoom(id string) *BookingBuilder {
	b.RoomKind = booking.RoomExternal
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithInternalRoom(id string) *BookingBuilder {
	b.RoomKind = booking.RoomInternal
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithHotelName(name string) *BookingBuilder {
	b.HotelName = name
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithTotalPrice(price float64) *BookingBuilder {
	b.TotalPrice = price
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) WithPaymentOrder(orderID string) *BookingBuilder {
	b.PaymentOrderID = orderID
	return b
}

// AsPendingRazorpay is the state of a booking created for online payment.
func (b *BookingBuilder) AsPendingRazorpay() *BookingBuilder {
	b.PaymentMethod = string(booking.PaymentMethodRazorpay)
	b.Status = booking.StatusPending
	b.PaymentStatus = booking.PaymentPending
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
