package queries

import (
	"context"

	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var roomSortFields = map[string]string{
	"createdAt":     "createdAt",
	"updatedAt":     "updatedAt",
	"name":          "name",
	"pricePerNight": "pricePerNight",
	"capacity":      "capacity",
}

type RoomFilter struct {
	ListParams
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity *int
	Available   *bool
	HotelID     string
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id string) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter, sort SortSpec) ([]*RoomView, int64, error)
}

type RoomQueries interface {
	List(ctx context.Context, filter RoomFilter) (*Page[*RoomView], error)
	Get(ctx context.Context, id string) (*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) (*Page[*RoomView], error) {
	params, sort, err := filter.ListParams.normalize(roomSortFields, "createdAt")
	if err != nil {
		return nil, err
	}
	filter.ListParams = params
	if err := validateRange(filter.MinPrice, filter.MaxPrice, "Price"); err != nil {
		return nil, err
	}
	if filter.MinCapacity != nil && *filter.MinCapacity < 0 {
		return nil, errs.Validation("minCapacity must be greater than or equal to 0")
	}
	if filter.HotelID != "" && !ident.Valid(filter.HotelID) {
		return nil, room.ErrInvalidHotelID
	}

	rows, total, err := q.store.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*RoomView{}
	}
	return &Page[*RoomView]{
		Data:       rows,
		Pagination: NewPagination(total, params.Page, params.Limit),
	}, nil
}

func (q *roomQueriesImpl) Get(ctx context.Context, id string) (*RoomView, error) {
	if !ident.Valid(id) {
		return nil, room.ErrRoomNotFound
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, room.ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}
