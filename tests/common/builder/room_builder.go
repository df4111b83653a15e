//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomBuilder struct {
	ID            string
	HotelID       string
	Name          string
	Description   string
	PricePerNight float64
	Capacity      int
	Amenities     []string
	Images        []string
	IsAvailable   bool
	CreatedAt     time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:            primitive.NewObjectID().Hex(),
		Name:          "Deluxe King",
		Description:   "King bed with a sea-facing balcony",
		PricePerNight: 3500,
		Capacity:      2,
		Amenities:     []string{"WiFi", "TV"},
		Images:        []string{"https://img.example.com/deluxe.jpg"},
		IsAvailable:   true,
		CreatedAt:     time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildFields() room.Fields {
	return room.Fields{
		HotelID:       r.HotelID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
	}
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.BuildFields(), r.CreatedAt)
}

func (r *RoomBuilder) BuildStored() *room.Room {
	return room.Reconstruct(r.ID, r.BuildFields(), r.CreatedAt, r.CreatedAt)
}

func (r *RoomBuilder) BuildDocument() document.Room {
	return document.FromRoom(r.BuildStored())
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Hotel:         r.HotelID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: ptr.To(r.PricePerNight),
		Capacity:      r.Capacity,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   ptr.To(r.IsAvailable),
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            r.ID,
		HotelID:       r.HotelID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.CreatedAt,
	}
}

func (r *RoomBuilder) WithID(id string) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithHotel(hotelID string) *RoomBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	r.PricePerNight = price
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}

func (r *RoomBuilder) AsUnavailable() *RoomBuilder {
	r.IsAvailable = false
	return r
}
