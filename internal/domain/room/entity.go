package room

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
)

var (
	ErrNameRequired        = errs.Validation("room name is required")
	ErrDescriptionRequired = errs.Validation("room description is required")
	ErrInvalidPrice        = errs.Validation("pricePerNight must be greater than or equal to 0")
	ErrInvalidCapacity     = errs.Validation("capacity must be at least 1")
	ErrInvalidHotelID      = errs.Validation("hotel must be a valid id")
	ErrRoomNotFound        = errs.NotFound("Room not found")
)

// Room optionally points at a hotel. The reference is not kept consistent on hotel deletion.
type Room struct {
	id        string
	fields    Fields
	createdAt time.Time
	updatedAt time.Time
}

type Fields struct {
	HotelID       string
	Name          string
	Description   string
	PricePerNight float64
	Capacity      int
	Amenities     []string
	Images        []string
	IsAvailable   bool
}

type Patch struct {
	HotelID       *string
	Name          *string
	Description   *string
	PricePerNight *float64
	Capacity      *int
	Amenities     *[]string
	Images        *[]string
	IsAvailable   *bool
}

func NewRoom(f Fields, now time.Time) (*Room, error) {
	f = f.normalized()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &Room{fields: f, createdAt: now, updatedAt: now}, nil
}

func Reconstruct(id string, f Fields, createdAt, updatedAt time.Time) *Room {
	return &Room{id: id, fields: f, createdAt: createdAt, updatedAt: updatedAt}
}

func (r *Room) Apply(p Patch, now time.Time) error {
	next := r.fields
	patch.Apply(&next.HotelID, p.HotelID)
	patch.Apply(&next.Name, p.Name)
	patch.Apply(&next.Description, p.Description)
	patch.Apply(&next.PricePerNight, p.PricePerNight)
	patch.Apply(&next.Capacity, p.Capacity)
	patch.Apply(&next.Amenities, p.Amenities)
	patch.Apply(&next.Images, p.Images)
	patch.Apply(&next.IsAvailable, p.IsAvailable)

	next = next.normalized()
	if err := next.validate(); err != nil {
		return err
	}
	r.fields = next
	r.updatedAt = now
	return nil
}

func (r *Room) ID() string           { return r.id }
func (r *Room) Fields() Fields       { return r.fields }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (f Fields) normalized() Fields {
	f.HotelID = strings.TrimSpace(f.HotelID)
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Amenities = hotel.NormalizeTags(f.Amenities)
	f.Images = hotel.NormalizeTags(f.Images)
	return f
}

func (f Fields) validate() error {
	if f.HotelID != "" && !ident.Valid(f.HotelID) {
		return ErrInvalidHotelID
	}
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Description == "" {
		return ErrDescriptionRequired
	}
	if f.PricePerNight < 0 {
		return ErrInvalidPrice
	}
	if f.Capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}
