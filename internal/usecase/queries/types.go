package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mocks.go -package=queriesmock hotel-booking/internal/usecase/queries BookingQueries,BookingReadStore,CatalogProvider,HotelQueries,HotelReadStore,RoomQueries,RoomReadStore,RoomResolver,TransactionQueries,TransactionReadStore,UserQueries,UserReadStore

import (
	"time"
)

// LocationView is the hotel location as rendered to clients.
type LocationView struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HotelView represents a hotel from any catalog source
type HotelView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    LocationView `json:"location"`
	Rating      float64      `json:"rating"`
	Price       float64      `json:"price"`
	Images      []string     `json:"images"`
	Amenities   []string     `json:"amenities"`
	Source      string       `json:"source"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

// Catalog sources
const (
	SourceLocal   = "local"
	SourceSample  = "sample"
	SourceAmadeus = "amadeus"
)

type RoomView struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotel_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingOwner is populated from the users collection; Name and Email may be empty.
type BookingOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type RoomRefView struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// RoomDetails is what a room reference resolved to at read time.
type RoomDetails struct {
	Source  string  `json:"source"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Image   string  `json:"image,omitempty"`
	Price   float64 `json:"price"`
	Address string  `json:"address,omitempty"`
}

type BookingView struct {
	ID             string       `json:"id"`
	User           BookingOwner `json:"user"`
	Room           RoomRefView  `json:"room"`
	RoomDetails    *RoomDetails `json:"room_details,omitempty"`
	HotelName      string       `json:"hotel_name"`
	HotelImage     string       `json:"hotel_image,omitempty"`
	CheckInDate    time.Time    `json:"check_in_date"`
	CheckOutDate   time.Time    `json:"check_out_date"`
	TotalPrice     float64      `json:"total_price"`
	Status         string       `json:"status"`
	PaymentStatus  string       `json:"payment_status"`
	PaymentOrderID string       `json:"payment_order_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type MonthlyStat struct {
	Month   string  `json:"month"` // YYYY-MM
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type HotelStat struct {
	HotelName string  `json:"hotel_name"`
	Count     int64   `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type BookingStats struct {
	TotalBookings    int64            `json:"total_bookings"`
	TotalRevenue     float64          `json:"total_revenue"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	Monthly          []MonthlyStat    `json:"monthly"`
	TopHotels        []HotelStat      `json:"top_hotels"`
	RecentBookings   []*BookingView   `json:"recent_bookings"`
}

type TransactionBooking struct {
	ID         string  `json:"id"`
	HotelName  string  `json:"hotel_name"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}

type TransactionView struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	BookingID string              `json:"booking_id"`
	Booking   *TransactionBooking `json:"booking,omitempty"`
	Amount    float64             `json:"amount"`
	Type      string              `json:"type"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// UserView represents read-optimized user data without credentials
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
