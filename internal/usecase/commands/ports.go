package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mocks.go -package=commandsmock hotel-booking/internal/usecase/commands AuthCommands,BookingCommands,BookingRepository,GoogleVerifier,HotelCommands,HotelRepository,PaymentCommands,PaymentProvider,RoomCommands,RoomRepository,TokenIssuer,TransactionCommands,TransactionRepository,UserRepository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/domain/user"
)

// Repositories return infra.RepositoryError; commands translate its kind into domain errors.
// Create assigns and returns the document id.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	UpdatePicture(ctx context.Context, id, picture string, now time.Time) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (string, error)
	FindByID(ctx context.Context, id string) (*hotel.Hotel, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id string) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (string, error)
	FindByID(ctx context.Context, id string) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (string, error)
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	// Save persists status, paymentStatus, paymentOrderId and updatedAt.
	Save(ctx context.Context, b *booking.Booking) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction) (string, error)
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*auth.GoogleProfile, error)
}

type TokenIssuer interface {
	GenerateToken(userID string, role user.Role) (string, error)
}

// OrderRequest is an amount in minor currency units.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

type PaymentOrder struct {
	ID       string
	Amount   int64
	Currency string
}

type PaymentProvider interface {
	Name() string
	CreateOrder(ctx context.Context, req OrderRequest) (*PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
