package hotel

import (
	"strings"

	"hotel-booking/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrNameRequired        = errs.Validation("hotel name is required")
	ErrDescriptionRequired = errs.Validation("hotel description is required")
	ErrAddressRequired     = errs.Validation("hotel location address is required")
	ErrInvalidLatitude     = errs.Validation("latitude must be between -90 and 90")
	ErrInvalidLongitude    = errs.Validation("longitude must be between -180 and 180")
	ErrInvalidPrice        = errs.Validation("price must be greater than or equal to 0")
	ErrInvalidRating       = errs.Validation("rating must be between 0 and 5")
	ErrHotelNotFound       = errs.NotFound("Hotel not found")
)

type Location struct {
	Address   string
	Latitude  float64
	Longitude float64
}

func (l Location) validate() error {
	if strings.TrimSpace(l.Address) == "" {
		return ErrAddressRequired
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// NormalizeTags trims, drops blanks and de-duplicates while keeping the first occurrence order.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
