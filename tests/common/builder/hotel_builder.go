//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HotelBuilder struct {
	ID          string
	Name        string
	Description string
	Address     string
	Latitude    float64
	Longitude   float64
	Rating      float64
	Price       float64
	Images      []string
	Amenities   []string
	CreatedAt   time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:          primitive.NewObjectID().Hex(),
		Name:        "Seaside Palace",
		Description: "Beachfront hotel with ocean views",
		Address:     "12 Marine Drive, Mumbai",
		Latitude:    18.9440,
		Longitude:   72.8230,
		Rating:      4.5,
		Price:       5200,
		Images:      []string{"https://img.example.com/seaside.jpg"},
		Amenities:   []string{"WiFi", "Pool"},
		CreatedAt:   time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) fields() hotel.Fields {
	return hotel.Fields{
		Name:        h.Name,
		Description: h.Description,
		Location:    hotel.Location{Address: h.Address, Latitude: h.Latitude, Longitude: h.Longitude},
		Rating:      h.Rating,
		Price:       h.Price,
		Images:      h.Images,
		Amenities:   h.Amenities,
	}
}

// Build methods
func (h *HotelBuilder) BuildFields() hotel.Fields {
	return h.fields()
}

func (h *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(h.fields(), h.CreatedAt)
}

func (h *HotelBuilder) BuildStored() *hotel.Hotel {
	return hotel.Reconstruct(h.ID, h.fields(), h.CreatedAt, h.CreatedAt)
}

func (h *HotelBuilder) BuildDocument() document.Hotel {
	return document.FromHotel(h.BuildStored())
}

func (h *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name:        h.Name,
		Description: h.Description,
		Location: reqdto.LocationInput{
			Address:   h.Address,
			Latitude:  ptr.To(h.Latitude),
			Longitude: ptr.To(h.Longitude),
		},
		Rating:    h.Rating,
		Price:     ptr.To(h.Price),
		Images:    h.Images,
		Amenities: h.Amenities,
	}
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	createdAt := h.CreatedAt
	return &queries.HotelView{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Location:    queries.LocationView{Address: h.Address, Latitude: h.Latitude, Longitude: h.Longitude},
		Rating:      h.Rating,
		Price:       h.Price,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Source:      queries.SourceLocal,
		CreatedAt:   &createdAt,
		UpdatedAt:   &createdAt,
	}
}

// Fluent builder methods
func (h *HotelBuilder) WithID(id string) *HotelBuilder {
	h.ID = id
	return h
}

func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}

func (h *HotelBuilder) WithAddress(address string) *HotelBuilder {
	h.Address = address
	return h
}

func (h *HotelBuilder) WithPrice(price float64) *HotelBuilder {
	h.Price = price
	return h
}

func (h *HotelBuilder) WithRating(rating float64) *HotelBuilder {
	h.Rating = rating
	return h
}

func (h *HotelBuilder) WithAmenities(amenities ...string) *HotelBuilder {
	h.Amenities = amenities
	return h
}
