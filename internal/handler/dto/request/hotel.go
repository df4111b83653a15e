package request

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/ptr"
)

// LocationInput also accepts the short lat/lng keys some clients send.
type LocationInput struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

// ToDomain prefers the long keys and requires one of each coordinate pair.
func (l LocationInput) ToDomain() (hotel.Location, error) {
	lat := l.Latitude
	if lat == nil {
		lat = l.Lat
	}
	lng := l.Longitude
	if lng == nil {
		lng = l.Lng
	}
	latitude, err := required(lat, "location.latitude")
	if err != nil {
		return hotel.Location{}, err
	}
	longitude, err := required(lng, "location.longitude")
	if err != nil {
		return hotel.Location{}, err
	}
	return hotel.Location{
		Address:   l.Address,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

type CreateHotelRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    LocationInput `json:"location"`
	Rating      float64       `json:"rating"`
	Price       *float64      `json:"price"`
	Images      []string      `json:"images"`
	Amenities   []string      `json:"amenities"`
}

func (r *CreateHotelRequest) ToFields() (hotel.Fields, error) {
	price, err := required(r.Price, "price")
	if err != nil {
		return hotel.Fields{}, err
	}
	loc, err := r.Location.ToDomain()
	if err != nil {
		return hotel.Fields{}, err
	}
	return hotel.Fields{
		Name:        r.Name,
		Description: r.Description,
		Location:    loc,
		Rating:      r.Rating,
		Price:       price,
		Images:      r.Images,
		Amenities:   r.Amenities,
	}, nil
}

// UpdateHotelRequest is a partial update. A location, when sent, replaces the stored one.
type UpdateHotelRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Location    *LocationInput `json:"location"`
	Rating      *float64       `json:"rating"`
	Price       *float64       `json:"price"`
	Images      *[]string      `json:"images"`
	Amenities   *[]string      `json:"amenities"`
}

func (r *UpdateHotelRequest) ToPatch() (hotel.Patch, error) {
	p := hotel.Patch{
		Name:        r.Name,
		Description: r.Description,
		Rating:      r.Rating,
		Price:       r.Price,
		Images:      r.Images,
		Amenities:   r.Amenities,
	}
	if r.Location != nil {
		loc, err := r.Location.ToDomain()
		if err != nil {
			return hotel.Patch{}, err
		}
		p.Location = ptr.To(loc)
	}
	return p, nil
}
