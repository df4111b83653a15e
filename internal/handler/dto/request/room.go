package request

import (
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/patch"
)

type CreateRoomRequest struct {
	Hotel         string   `json:"hotel"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   *bool    `json:"isAvailable"`
}

// ToFields defaults isAvailable to true.
func (r *CreateRoomRequest) ToFields() (room.Fields, error) {
	price, err := required(r.PricePerNight, "pricePerNight")
	if err != nil {
		return room.Fields{}, err
	}
	return room.Fields{
		HotelID:       r.Hotel,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: price,
		Capacity:      r.Capacity,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   patch.Coalesce(r.IsAvailable, true),
	}, nil
}

type UpdateRoomRequest struct {
	Hotel         *string   `json:"hotel"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PricePerNight *float64  `json:"pricePerNight"`
	Capacity      *int      `json:"capacity"`
	Amenities     *[]string `json:"amenities"`
	Images        *[]string `json:"images"`
	IsAvailable   *bool     `json:"isAvailable"`
}

func (r *UpdateRoomRequest) ToPatch() room.Patch {
	return room.Patch{
		HotelID:       r.Hotel,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
	}
}
