package document

import (
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Location struct {
	Address   string  `bson:"address"`
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type Hotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Location    Location           `bson:"location"`
	Rating      float64            `bson:"rating"`
	Price       float64            `bson:"price"`
	Images      []string           `bson:"images"`
	Amenities   []string           `bson:"amenities"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func FromHotel(h *hotel.Hotel) Hotel {
	f := h.Fields()
	doc := Hotel{
		Name:        f.Name,
		Description: f.Description,
		Location: Location{
			Address:   f.Location.Address,
			Latitude:  f.Location.Latitude,
			Longitude: f.Location.Longitude,
		},
		Rating:    f.Rating,
		Price:     f.Price,
		Images:    nonNil(f.Images),
		Amenities: nonNil(f.Amenities),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
	if oid, ok := ObjectID(h.ID()); ok {
		doc.ID = oid
	}
	return doc
}

func (d Hotel) ToDomain() *hotel.Hotel {
	return hotel.Reconstruct(d.ID.Hex(), hotel.Fields{
		Name:        d.Name,
		Description: d.Description,
		Location: hotel.Location{
			Address:   d.Location.Address,
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
		},
		Rating:    d.Rating,
		Price:     d.Price,
		Images:    d.Images,
		Amenities: d.Amenities,
	}, d.CreatedAt, d.UpdatedAt)
}

func (d Hotel) ToView() *queries.HotelView {
	createdAt, updatedAt := d.CreatedAt, d.UpdatedAt
	return &queries.HotelView{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Location: queries.LocationView{
			Address:   d.Location.Address,
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
		},
		Rating:    d.Rating,
		Price:     d.Price,
		Images:    nonNil(d.Images),
		Amenities: nonNil(d.Amenities),
		Source:    queries.SourceLocal,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}
