package hotel

import (
	"strings"
	"time"

	"hotel-booking/internal/pkg/patch"
)

type Hotel struct {
	id        string
	fields    Fields
	createdAt time.Time
	updatedAt time.Time
}

// Fields is the mutable part of a hotel.
type Fields struct {
	Name        string
	Description string
	Location    Location
	Rating      float64
	Price       float64
	Images      []string
	Amenities   []string
}

// Patch carries a partial update; nil members are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Location    *Location
	Rating      *float64
	Price       *float64
	Images      *[]string
	Amenities   *[]string
}

func NewHotel(f Fields, now time.Time) (*Hotel, error) {
	f = f.normalized()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &Hotel{fields: f, createdAt: now, updatedAt: now}, nil
}

func Reconstruct(id string, f Fields, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{id: id, fields: f, createdAt: createdAt, updatedAt: updatedAt}
}

// Apply re-runs the full validation on the patched fields and leaves h untouched on failure.
func (h *Hotel) Apply(p Patch, now time.Time) error {
	next := h.fields
	patch.Apply(&next.Name, p.Name)
	patch.Apply(&next.Description, p.Description)
	patch.Apply(&next.Location, p.Location)
	patch.Apply(&next.Rating, p.Rating)
	patch.Apply(&next.Price, p.Price)
	patch.Apply(&next.Images, p.Images)
	patch.Apply(&next.Amenities, p.Amenities)

	next = next.normalized()
	if err := next.validate(); err != nil {
		return err
	}
	h.fields = next
	h.updatedAt = now
	return nil
}

func (h *Hotel) ID() string           { return h.id }
func (h *Hotel) Fields() Fields       { return h.fields }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

func (f Fields) normalized() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Location.Address = strings.TrimSpace(f.Location.Address)
	f.Amenities = NormalizeTags(f.Amenities)
	f.Images = NormalizeTags(f.Images)
	return f
}

func (f Fields) validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Description == "" {
		return ErrDescriptionRequired
	}
	if err := f.Location.validate(); err != nil {
		return err
	}
	if f.Price < 0 {
		return ErrInvalidPrice
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
