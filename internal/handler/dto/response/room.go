package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"
)

type RoomResponse struct {
	ID            string    `json:"_id"`
	Hotel         string    `json:"hotel,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"pricePerNight"`
	Capacity      int       `json:"capacity"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RoomListResponse = ListResponse[*RoomResponse]

func FromRoomView(v *queries.RoomView) *RoomResponse {
	res := copyInto[RoomResponse](v)
	res.Hotel = v.HotelID
	res.Amenities = nonNil(v.Amenities)
	res.Images = nonNil(v.Images)
	return res
}

func FromRoomPage(p *queries.Page[*queries.RoomView]) RoomListResponse {
	return fromPage(p, FromRoomView)
}
