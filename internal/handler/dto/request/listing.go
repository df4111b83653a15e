package request

import (
	"strings"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/queries"
)

// ListQuery is the paging part shared by the hotel and room listings.
type ListQuery struct {
	Page      *int   `form:"page"`
	Limit     *int   `form:"limit"`
	SortBy    string `form:"sortBy"`
	Order     string `form:"order"`
	Search    string `form:"search"`
	Amenities string `form:"amenities"`
}

func (q ListQuery) toParams() (queries.ListParams, error) {
	if q.Page != nil && *q.Page < 1 {
		return queries.ListParams{}, errs.Validation("page must be at least 1")
	}
	if q.Limit != nil && (*q.Limit < 1 || *q.Limit > queries.MaxLimit) {
		return queries.ListParams{}, errs.Validationf("limit must be between 1 and %d", queries.MaxLimit)
	}
	order, err := queries.ParseSortOrder(q.Order)
	if err != nil {
		return queries.ListParams{}, err
	}
	return queries.ListParams{
		Page:      ptr.Deref(q.Page),
		Limit:     ptr.Deref(q.Limit),
		SortBy:    strings.TrimSpace(q.SortBy),
		Order:     order,
		Search:    q.Search,
		Amenities: splitList(q.Amenities),
	}, nil
}

type HotelListQuery struct {
	ListQuery
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	MinRating *float64 `form:"minRating"`
}

func (q HotelListQuery) ToFilter() (queries.HotelFilter, error) {
	params, err := q.toParams()
	if err != nil {
		return queries.HotelFilter{}, err
	}
	return queries.HotelFilter{
		ListParams: params,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		MinRating:  q.MinRating,
	}, nil
}

type RoomListQuery struct {
	ListQuery
	MinPrice    *float64 `form:"minPrice"`
	MaxPrice    *float64 `form:"maxPrice"`
	MinCapacity *int     `form:"minCapacity"`
	Available   *bool    `form:"available"`
	Hotel       string   `form:"hotel"`
}

func (q RoomListQuery) ToFilter() (queries.RoomFilter, error) {
	params, err := q.toParams()
	if err != nil {
		return queries.RoomFilter{}, err
	}
	return queries.RoomFilter{
		ListParams:  params,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinCapacity: q.MinCapacity,
		Available:   q.Available,
		HotelID:     strings.TrimSpace(q.Hotel),
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
