package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

// required rejects a field that was absent from the body, so it never decodes to its zero value.
func required[T any](v *T, field string) (T, error) {
	if v == nil {
		var zero T
		return zero, errs.Validationf("%s is required", field)
	}
	return *v, nil
}

// Date accepts RFC 3339 timestamps as well as bare calendar dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errs.Validation("dates must be strings")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return errs.Validationf("invalid date %q", s)
}

// RoomRefInput is either {"kind": "...", "id": "..."} or a bare id string.
// A bare string refers to an external catalog room.
type RoomRefInput struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (r *RoomRefInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		r.Kind, r.ID = string(booking.RoomExternal), id
		return nil
	}
	type plain RoomRefInput
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return errs.Validation("room must be an id or an object with kind and id")
	}
	*r = RoomRefInput(p)
	return nil
}

type CreateBookingRequest struct {
	Room          RoomRefInput `json:"room"`
	HotelName     string       `json:"hotelName"`
	HotelImage    string       `json:"hotelImage"`
	CheckInDate   Date         `json:"checkInDate"`
	CheckOutDate  Date         `json:"checkOutDate"`
	TotalPrice    *float64     `json:"totalPrice"`
	PaymentMethod string       `json:"paymentMethod"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	totalPrice, err := required(r.TotalPrice, "totalPrice")
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		RoomKind:      r.Room.Kind,
		RoomID:        r.Room.ID,
		HotelName:     r.HotelName,
		HotelImage:    r.HotelImage,
		CheckIn:       r.CheckInDate.Time,
		CheckOut:      r.CheckOutDate.Time,
		TotalPrice:    totalPrice,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
