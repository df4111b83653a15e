package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"
)

type LocationResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HotelResponse struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    LocationResponse `json:"location"`
	Rating      float64          `json:"rating"`
	Price       float64          `json:"price"`
	Images      []string         `json:"images"`
	Amenities   []string         `json:"amenities"`
	Source      string           `json:"source,omitempty"`
	CreatedAt   *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

type HotelListResponse = ListResponse[*HotelResponse]

func FromHotelView(v *queries.HotelView) *HotelResponse {
	res := copyInto[HotelResponse](v)
	res.Location = LocationResponse(v.Location)
	res.Images = nonNil(v.Images)
	res.Amenities = nonNil(v.Amenities)
	return res
}

func FromHotelViews(vs []*queries.HotelView) []*HotelResponse {
	out := make([]*HotelResponse, len(vs))
	for i, v := range vs {
		out[i] = FromHotelView(v)
	}
	return out
}

func FromHotelPage(p *queries.Page[*queries.HotelView]) HotelListResponse {
	return fromPage(p, FromHotelView)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
