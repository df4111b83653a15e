package catalog

import (
	"context"
	"strings"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
)

var ErrHotelNotInCatalog = errs.NotFound("Hotel not found")

// StaticProvider serves the built-in sample hotels. It is the default without Amadeus credentials
// and the fallback when Amadeus fails.
type StaticProvider struct {
	hotels []queries.HotelView
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{hotels: sampleHotels}
}

func (p *StaticProvider) Search(_ context.Context, location string) ([]*queries.HotelView, error) {
	location = strings.ToLower(strings.TrimSpace(location))
	all := location == "" || location == strings.ToLower(queries.SearchAll)

	out := make([]*queries.HotelView, 0, len(p.hotels))
	for i := range p.hotels {
		h := p.hotels[i]
		if all || strings.Contains(strings.ToLower(h.Location.Address), location) {
			out = append(out, cloneView(&h))
		}
	}
	return out, nil
}

func (p *StaticProvider) Get(_ context.Context, id string) (*queries.HotelView, error) {
	for i := range p.hotels {
		if p.hotels[i].ID == id {
			return cloneView(&p.hotels[i]), nil
		}
	}
	return nil, ErrHotelNotInCatalog
}

// cloneView copies the slices so callers cannot mutate the shared sample set.
func cloneView(h *queries.HotelView) *queries.HotelView {
	c := *h
	c.Images = append([]string{}, h.Images...)
	c.Amenities = append([]string{}, h.Amenities...)
	return &c
}

var sampleHotels = []queries.HotelView{
	{
		ID:          "1",
		Name:        "The Taj Mahal Palace",
		Description: "Iconic luxury hotel overlooking the Gateway of India.",
		Location:    queries.LocationView{Address: "Apollo Bunder, Mumbai, Maharashtra 400001", Latitude: 18.9217, Longitude: 72.8332},
		Rating:      4.9,
		Price:       25000,
		Images:      []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Pool", "Spa", "Sea View", "Fine Dining"},
		Source:      queries.SourceSample,
	},
	{
		ID:          "2",
		Name:        "ITC Grand Chola",
		Description: "A palatial tribute to Southern India's golden age.",
		Location:    queries.LocationView{Address: "No. 63, Mount Road, Guindy, Chennai, Tamil Nadu 600032", Latitude: 13.0105, Longitude: 80.2205},
		Rating:      4.8,
		Price:       18000,
		Images:      []string{"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Luxury Spa", "Multiple Pools", "Banquet Hall", "Gym"},
		Source:      queries.SourceSample,
	},
	{
		ID:          "3",
		Name:        "The Leela Palace",
		Description: "Experience the grandeur of Indian royalty in the capital.",
		Location:    queries.LocationView{Address: "Diplomatic Enclave, Chanakyapuri, New Delhi, Delhi 110023", Latitude: 28.5823, Longitude: 77.1870},
		Rating:      4.9,
		Price:       22000,
		Images:      []string{"https://images.unsplash.com/photo-1582719508461-905c673771fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Rooftop Pool", "Fine Dining", "Spa", "Butler Service"},
		Source:      queries.SourceSample,
	},
	{
		ID:          "4",
		Name:        "Trident Nariman Point",
		Description: "Stunning views of the Marine Drive and the ocean.",
		Location:    queries.LocationView{Address: "Nariman Point, Mumbai, Maharashtra 400021", Latitude: 18.9270, Longitude: 72.8230},
		Rating:      4.6,
		Price:       15000,
		Images:      []string{"https://images.unsplash.com/photo-1566665797739-1674de7a421a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Ocean View", "Pool", "Business Center", "Bar"},
		Source:      queries.SourceSample,
	},
	{
		ID:          "5",
		Name:        "Taj Connemara",
		Description: "Chennai's only heritage hotel, blending history with modern luxury.",
		Location:    queries.LocationView{Address: "Binny Road, Chennai, Tamil Nadu 600002", Latitude: 13.0628, Longitude: 80.2642},
		Rating:      4.7,
		Price:       12000,
		Images:      []string{"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Heritage Walk", "Pool", "Verandah Dining", "Spa"},
		Source:      queries.SourceSample,
	},
	{
		ID:          "6",
		Name:        "The Oberoi",
		Description: "Contemporary luxury in the heart of New Delhi.",
		Location:    queries.LocationView{Address: "Dr. Zakir Hussain Marg, New Delhi, Delhi 110003", Latitude: 28.6015, Longitude: 77.2269},
		Rating:      4.9,
		Price:       28000,
		Images:      []string{"https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
		Amenities:   []string{"Golf Course View", "Air Purification", "24hr Spa", "Fine Dining"},
		Source:      queries.SourceSample,
	},
}
