package document

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomRef struct {
	Kind string `bson:"kind"`
	ID   string `bson:"id"`
}

// UnmarshalBSONValue also accepts the legacy layout where room was a bare string.
func (r *RoomRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	if s, ok := raw.StringValueOK(); ok {
		*r = RoomRef{Kind: string(booking.RoomExternal), ID: s}
		return nil
	}
	type plain RoomRef
	var p plain
	if err := raw.Unmarshal(&p); err != nil {
		return err
	}
	if p.Kind == "" {
		p.Kind = string(booking.RoomExternal)
	}
	*r = RoomRef(p)
	return nil
}

type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User           primitive.ObjectID `bson:"user"`
	Room           RoomRef            `bson:"room"`
	HotelName      string             `bson:"hotelName"`
	HotelImage     string             `bson:"hotelImage,omitempty"`
	CheckInDate    time.Time          `bson:"checkInDate"`
	CheckOutDate   time.Time          `bson:"checkOutDate"`
	TotalPrice     float64            `bson:"totalPrice"`
	Status         string             `bson:"status"`
	PaymentStatus  string             `bson:"paymentStatus"`
	PaymentOrderID string             `bson:"paymentOrderId,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
	// Version is bumped by every lifecycle write; documents from before it existed read as 0.
	Version int64 `bson:"version"`
}

// Owner is the projection of users joined into booking reads.
type Owner struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// BookingRow is a booking with its owner joined by $lookup.
type BookingRow struct {
	Booking `bson:",inline"`
	Owner   *Owner `bson:"owner,omitempty"`
}

func FromBooking(b *booking.Booking) Booking {
	s := b.Snapshot()
	doc := Booking{
		Room:           RoomRef{Kind: string(s.Room.Kind), ID: s.Room.ID},
		HotelName:      s.HotelName,
		HotelImage:     s.HotelImage,
		CheckInDate:    s.CheckIn,
		CheckOutDate:   s.CheckOut,
		TotalPrice:     s.TotalPrice,
		Status:         s.Status.String(),
		PaymentStatus:  string(s.PaymentStatus),
		PaymentOrderID: s.PaymentOrderID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
	if oid, ok := ObjectID(s.ID); ok {
		doc.ID = oid
	}
	if oid, ok := ObjectID(s.UserID); ok {
		doc.User = oid
	}
	return doc
}

func (d Booking) ToDomain() *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:             d.ID.Hex(),
		UserID:         hexOrEmpty(d.User),
		Room:           booking.RoomRef{Kind: booking.RoomKind(d.Room.Kind), ID: d.Room.ID},
		HotelName:      d.HotelName,
		HotelImage:     d.HotelImage,
		CheckIn:        d.CheckInDate,
		CheckOut:       d.CheckOutDate,
		TotalPrice:     d.TotalPrice,
		Status:         booking.Status(d.Status),
		PaymentStatus:  booking.PaymentStatus(d.PaymentStatus),
		PaymentOrderID: d.PaymentOrderID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Version:        d.Version,
	})
}

func (d BookingRow) ToView() *queries.BookingView {
	v := &queries.BookingView{
		ID:             d.ID.Hex(),
		User:           queries.BookingOwner{ID: hexOrEmpty(d.User)},
		Room:           queries.RoomRefView{Kind: d.Room.Kind, ID: d.Room.ID},
		HotelName:      d.HotelName,
		HotelImage:     d.HotelImage,
		CheckInDate:    d.CheckInDate,
		CheckOutDate:   d.CheckOutDate,
		TotalPrice:     d.TotalPrice,
		Status:         d.Status,
		PaymentStatus:  d.PaymentStatus,
		PaymentOrderID: d.PaymentOrderID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Owner != nil {
		v.User.Name = d.Owner.Name
		v.User.Email = d.Owner.Email
	}
	return v
}

// BookingStats is the single result document of the stats $facet.
type BookingStats struct {
	Totals []struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	} `bson:"totals"`
	ByStatus []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	} `bson:"byStatus"`
	Monthly []struct {
		Month   string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	} `bson:"monthly"`
	TopHotels []struct {
		HotelName string  `bson:"_id"`
		Count     int64   `bson:"count"`
		Revenue   float64 `bson:"revenue"`
	} `bson:"topHotels"`
	Recent []BookingRow `bson:"recent"`
}

func (d BookingStats) ToView() *queries.BookingStats {
	out := &queries.BookingStats{
		BookingsByStatus: make(map[string]int64, len(d.ByStatus)),
		Monthly:          make([]queries.MonthlyStat, 0, len(d.Monthly)),
		TopHotels:        make([]queries.HotelStat, 0, len(d.TopHotels)),
		RecentBookings:   make([]*queries.BookingView, 0, len(d.Recent)),
	}
	if len(d.Totals) > 0 {
		out.TotalBookings = d.Totals[0].Count
		out.TotalRevenue = d.Totals[0].Revenue
	}
	for _, s := range d.ByStatus {
		out.BookingsByStatus[s.Status] = s.Count
	}
	for _, m := range d.Monthly {
		out.Monthly = append(out.Monthly, queries.MonthlyStat{Month: m.Month, Count: m.Count, Revenue: m.Revenue})
	}
	for _, h := range d.TopHotels {
		out.TopHotels = append(out.TopHotels, queries.HotelStat{HotelName: h.HotelName, Count: h.Count, Revenue: h.Revenue})
	}
	for _, r := range d.Recent {
		out.RecentBookings = append(out.RecentBookings, r.ToView())
	}
	return out
}
