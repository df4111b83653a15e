package queries

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

// SearchAll asks a catalog provider for its whole inventory.
const SearchAll = "ALL"

var hotelSortFields = map[string]string{
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
	"name":      "name",
	"price":     "price",
	"rating":    "rating",
}

type HotelFilter struct {
	ListParams
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id string) (*HotelView, error)
	List(ctx context.Context, filter HotelFilter, sort SortSpec) ([]*HotelView, int64, error)
	SearchByAddress(ctx context.Context, location string) ([]*HotelView, error)
}

// CatalogProvider is a source of hotel search results and lookups.
// Get returns an error marked errs.ErrNotFound when the id is unknown to the provider.
type CatalogProvider interface {
	Search(ctx context.Context, location string) ([]*HotelView, error)
	Get(ctx context.Context, id string) (*HotelView, error)
}

type HotelQueries interface {
	List(ctx context.Context, filter HotelFilter) (*Page[*HotelView], error)
	Get(ctx context.Context, id string) (*HotelView, error)
	Search(ctx context.Context, location string) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	store   HotelReadStore
	catalog CatalogProvider
}

func NewHotelQueries(store HotelReadStore, catalog CatalogProvider) HotelQueries {
	return &hotelQueriesImpl{store: store, catalog: catalog}
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter HotelFilter) (*Page[*HotelView], error) {
	params, sort, err := filter.ListParams.normalize(hotelSortFields, "createdAt")
	if err != nil {
		return nil, err
	}
	filter.ListParams = params
	if err := validateRange(filter.MinPrice, filter.MaxPrice, "Price"); err != nil {
		return nil, err
	}
	if filter.MinRating != nil && (*filter.MinRating < hotel.MinRating || *filter.MinRating > hotel.MaxRating) {
		return nil, hotel.ErrInvalidRating
	}

	rows, total, err := q.store.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*HotelView{}
	}
	return &Page[*HotelView]{
		Data:       rows,
		Pagination: NewPagination(total, params.Page, params.Limit),
	}, nil
}

// Get looks in the hotels collection first, then in the configured catalog provider.
func (q *hotelQueriesImpl) Get(ctx context.Context, id string) (*HotelView, error) {
	if ident.Valid(id) {
		view, err := q.store.FindByID(ctx, id)
		if err == nil {
			return view, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}

	view, err := q.catalog.Get(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, hotel.ErrHotelNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) Search(ctx context.Context, location string) ([]*HotelView, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = SearchAll
	}
	hotels, err := q.catalog.Search(ctx, location)
	if err != nil {
		slog.Error("catalog search failed", "location", location, "error", err.Error())
		return nil, err
	}
	if hotels == nil {
		hotels = []*HotelView{}
	}
	return hotels, nil
}
