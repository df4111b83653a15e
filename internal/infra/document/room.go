package document

import (
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Hotel         *primitive.ObjectID `bson:"hotel,omitempty"`
	Name          string              `bson:"name"`
	Description   string              `bson:"description"`
	PricePerNight float64             `bson:"pricePerNight"`
	Capacity      int                 `bson:"capacity"`
	Amenities     []string            `bson:"amenities"`
	Images        []string            `bson:"images"`
	IsAvailable   bool                `bson:"isAvailable"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"`
}

func FromRoom(r *room.Room) Room {
	f := r.Fields()
	doc := Room{
		Name:          f.Name,
		Description:   f.Description,
		PricePerNight: f.PricePerNight,
		Capacity:      f.Capacity,
		Amenities:     nonNil(f.Amenities),
		Images:        nonNil(f.Images),
		IsAvailable:   f.IsAvailable,
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if oid, ok := ObjectID(r.ID()); ok {
		doc.ID = oid
	}
	if oid, ok := ObjectID(f.HotelID); ok {
		doc.Hotel = &oid
	}
	return doc
}

func (d Room) hotelHex() string {
	if d.Hotel == nil {
		return ""
	}
	return hexOrEmpty(*d.Hotel)
}

func (d Room) ToDomain() *room.Room {
	return room.Reconstruct(d.ID.Hex(), room.Fields{
		HotelID:       d.hotelHex(),
		Name:          d.Name,
		Description:   d.Description,
		PricePerNight: d.PricePerNight,
		Capacity:      d.Capacity,
		Amenities:     d.Amenities,
		Images:        d.Images,
		IsAvailable:   d.IsAvailable,
	}, d.CreatedAt, d.UpdatedAt)
}

func (d Room) ToView() *queries.RoomView {
	return &queries.RoomView{
		ID:            d.ID.Hex(),
		HotelID:       d.hotelHex(),
		Name:          d.Name,
		Description:   d.Description,
		PricePerNight: d.PricePerNight,
		Capacity:      d.Capacity,
		Amenities:     nonNil(d.Amenities),
		Images:        nonNil(d.Images),
		IsAvailable:   d.IsAvailable,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
