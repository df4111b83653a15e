package commands

import (
	"context"

	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

type RoomCommands interface {
	Create(ctx context.Context, identity shared.Identity, fields room.Fields) (string, error)
	Update(ctx context.Context, identity shared.Identity, id string, patch room.Patch) error
	Delete(ctx context.Context, identity shared.Identity, id string) error
}

type roomCommandsImpl struct {
	rooms RoomRepository
	clock clock.Clock
}

func NewRoomCommands(rooms RoomRepository, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{rooms: rooms, clock: clk}
}

func (r *roomCommandsImpl) Create(ctx context.Context, identity shared.Identity, fields room.Fields) (string, error) {
	if err := shared.RequireAdmin(identity); err != nil {
		return "", err
	}
	rm, err := room.NewRoom(fields, r.clock.Now())
	if err != nil {
		return "", err
	}
	return r.rooms.Create(ctx, rm)
}

func (r *roomCommandsImpl) Update(ctx context.Context, identity shared.Identity, id string, patch room.Patch) error {
	if err := shared.RequireAdmin(identity); err != nil {
		return err
	}
	if !ident.Valid(id) {
		return room.ErrRoomNotFound
	}
	rm, err := r.rooms.FindByID(ctx, id)
	if err != nil {
		return notFoundAs(err, room.ErrRoomNotFound)
	}
	if err := rm.Apply(patch, r.clock.Now()); err != nil {
		return err
	}
	return notFoundAs(r.rooms.Update(ctx, rm), room.ErrRoomNotFound)
}

func (r *roomCommandsImpl) Delete(ctx context.Context, identity shared.Identity, id string) error {
	if err := shared.RequireAdmin(identity); err != nil {
		return err
	}
	if !ident.Valid(id) {
		return room.ErrRoomNotFound
	}
	return notFoundAs(r.rooms.Delete(ctx, id), room.ErrRoomNotFound)
}
