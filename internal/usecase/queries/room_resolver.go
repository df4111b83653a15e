package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"

	"golang.org/x/sync/errgroup"
)

// resolveConcurrency bounds outbound lookups per request.
const resolveConcurrency = 8

// RoomResolver is the single lookup for booking room references.
type RoomResolver interface {
	Resolve(ctx context.Context, ref booking.RoomRef) (*RoomDetails, error)
}

type roomResolverImpl struct {
	rooms   RoomReadStore
	catalog CatalogProvider
}

func NewRoomResolver(rooms RoomReadStore, catalog CatalogProvider) RoomResolver {
	return &roomResolverImpl{rooms: rooms, catalog: catalog}
}

func (r *roomResolverImpl) Resolve(ctx context.Context, ref booking.RoomRef) (*RoomDetails, error) {
	if ref.IsInternal() {
		rv, err := r.rooms.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		var image string
		if len(rv.Images) > 0 {
			image = rv.Images[0]
		}
		return &RoomDetails{
			Source: SourceLocal,
			ID:     rv.ID,
			Name:   rv.Name,
			Image:  image,
			Price:  rv.PricePerNight,
		}, nil
	}

	hv, err := r.catalog.Get(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	var image string
	if len(hv.Images) > 0 {
		image = hv.Images[0]
	}
	return &RoomDetails{
		Source:  hv.Source,
		ID:      hv.ID,
		Name:    hv.Name,
		Image:   image,
		Price:   hv.Price,
		Address: hv.Location.Address,
	}, nil
}

// resolveRooms fills RoomDetails for every view. Each distinct reference is looked up once;
// lookup failures leave the details empty.
func resolveRooms(ctx context.Context, resolver RoomResolver, views []*BookingView) {
	refs := make(map[string]booking.RoomRef)
	for _, v := range views {
		ref := refFromView(v.Room)
		refs[ref.Key()] = ref
	}

	results := make(map[string]*RoomDetails, len(refs))
	resultCh := make(chan struct {
		key     string
		details *RoomDetails
	}, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for key, ref := range refs {
		key, ref := key, ref
		g.Go(func() error {
			details, err := resolver.Resolve(gctx, ref)
			if err != nil {
				slog.Debug("room reference not resolved", "room", key, "error", err.Error())
				return nil
			}
			resultCh <- struct {
				key     string
				details *RoomDetails
			}{key, details}
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)
	for r := range resultCh {
		results[r.key] = r.details
	}

	for _, v := range views {
		v.RoomDetails = results[refFromView(v.Room).Key()]
	}
}

func refFromView(r RoomRefView) booking.RoomRef {
	return booking.RoomRef{Kind: booking.RoomKind(r.Kind), ID: r.ID}
}
