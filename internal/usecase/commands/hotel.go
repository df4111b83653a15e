package commands

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

type HotelCommands interface {
	Create(ctx context.Context, identity shared.Identity, fields hotel.Fields) (string, error)
	Update(ctx context.Context, identity shared.Identity, id string, patch hotel.Patch) error
	Delete(ctx context.Context, identity shared.Identity, id string) error
}

type hotelCommandsImpl struct {
	hotels HotelRepository
	clock  clock.Clock
}

func NewHotelCommands(hotels HotelRepository, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{hotels: hotels, clock: clk}
}

func (h *hotelCommandsImpl) Create(ctx context.Context, identity shared.Identity, fields hotel.Fields) (string, error) {
	if err := shared.RequireAdmin(identity); err != nil {
		return "", err
	}
	ht, err := hotel.NewHotel(fields, h.clock.Now())
	if err != nil {
		return "", err
	}
	return h.hotels.Create(ctx, ht)
}

func (h *hotelCommandsImpl) Update(ctx context.Context, identity shared.Identity, id string, patch hotel.Patch) error {
	if err := shared.RequireAdmin(identity); err != nil {
		return err
	}
	if !ident.Valid(id) {
		return hotel.ErrHotelNotFound
	}
	ht, err := h.hotels.FindByID(ctx, id)
	if err != nil {
		return notFoundAs(err, hotel.ErrHotelNotFound)
	}
	if err := ht.Apply(patch, h.clock.Now()); err != nil {
		return err
	}
	return notFoundAs(h.hotels.Update(ctx, ht), hotel.ErrHotelNotFound)
}

func (h *hotelCommandsImpl) Delete(ctx context.Context, identity shared.Identity, id string) error {
	if err := shared.RequireAdmin(identity); err != nil {
		return err
	}
	if !ident.Valid(id) {
		return hotel.ErrHotelNotFound
	}
	return notFoundAs(h.hotels.Delete(ctx, id), hotel.ErrHotelNotFound)
}

// notFoundAs replaces a repository NOT_FOUND with the given domain error.
func notFoundAs(err, domainErr error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}
