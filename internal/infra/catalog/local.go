package catalog

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"
)

// AddressSearcher is the part of the hotel read store the local provider needs.
type AddressSearcher interface {
	FindByID(ctx context.Context, id string) (*queries.HotelView, error)
	SearchByAddress(ctx context.Context, location string) ([]*queries.HotelView, error)
}

// LocalProvider answers catalog calls from the hotels collection.
type LocalProvider struct {
	store AddressSearcher
}

func NewLocalProvider(store AddressSearcher) *LocalProvider {
	return &LocalProvider{store: store}
}

func (p *LocalProvider) Search(ctx context.Context, location string) ([]*queries.HotelView, error) {
	return p.store.SearchByAddress(ctx, location)
}

func (p *LocalProvider) Get(ctx context.Context, id string) (*queries.HotelView, error) {
	view, err := p.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotInCatalog
		}
		return nil, err
	}
	return view, nil
}
