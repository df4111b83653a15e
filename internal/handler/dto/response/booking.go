package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"
)

type BookingUserResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type RoomRefResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type RoomDetailsResponse struct {
	Source  string  `json:"source"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Image   string  `json:"image,omitempty"`
	Price   float64 `json:"price"`
	Address string  `json:"address,omitempty"`
}

type BookingResponse struct {
	ID             string               `json:"_id"`
	User           BookingUserResponse  `json:"user"`
	Room           RoomRefResponse      `json:"room"`
	RoomDetails    *RoomDetailsResponse `json:"roomDetails,omitempty"`
	HotelName      string               `json:"hotelName"`
	HotelImage     string               `json:"hotelImage,omitempty"`
	CheckInDate    time.Time            `json:"checkInDate"`
	CheckOutDate   time.Time            `json:"checkOutDate"`
	TotalPrice     float64              `json:"totalPrice"`
	Status         string               `json:"status"`
	PaymentStatus  string               `json:"paymentStatus"`
	PaymentOrderID string               `json:"paymentOrderId,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := copyInto[BookingResponse](v)
	res.User = BookingUserResponse(v.User)
	res.Room = RoomRefResponse(v.Room)
	res.RoomDetails = nil
	if v.RoomDetails != nil {
		details := RoomDetailsResponse(*v.RoomDetails)
		res.RoomDetails = &details
	}
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

// BookingActionResponse is returned by the cancel and status endpoints.
type BookingActionResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type MonthlyStatResponse struct {
	Month   string  `json:"month"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type HotelStatResponse struct {
	HotelName string  `json:"hotelName"`
	Count     int64   `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type BookingStatsResponse struct {
	TotalBookings    int64                 `json:"totalBookings"`
	TotalRevenue     float64               `json:"totalRevenue"`
	BookingsByStatus map[string]int64      `json:"bookingsByStatus"`
	MonthlyBookings  []MonthlyStatResponse `json:"monthlyBookings"`
	TopHotels        []HotelStatResponse   `json:"topHotels"`
	RecentBookings   []*BookingResponse    `json:"recentBookings"`
}

func FromBookingStats(s *queries.BookingStats) *BookingStatsResponse {
	res := &BookingStatsResponse{
		TotalBookings:    s.TotalBookings,
		TotalRevenue:     s.TotalRevenue,
		BookingsByStatus: s.BookingsByStatus,
		MonthlyBookings:  make([]MonthlyStatResponse, len(s.Monthly)),
		TopHotels:        make([]HotelStatResponse, len(s.TopHotels)),
		RecentBookings:   FromBookingViews(s.RecentBookings),
	}
	for i, m := range s.Monthly {
		res.MonthlyBookings[i] = MonthlyStatResponse(m)
	}
	for i, h := range s.TopHotels {
		res.TopHotels[i] = HotelStatResponse(h)
	}
	return res
}
