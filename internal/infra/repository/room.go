package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(database *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: database.Collection(db.RoomsCollection)}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (string, error) {
	doc := document.FromRoom(rm)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to insert room", err)
	}
	return doc.ID.Hex(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*room.Room, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid room id", nil)
	}
	var doc document.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find room", err)
	}
	return doc.ToDomain(), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	doc := document.FromRoom(rm)
	set := bson.M{
		"hotel":         doc.Hotel,
		"name":          doc.Name,
		"description":   doc.Description,
		"pricePerNight": doc.PricePerNight,
		"capacity":      doc.Capacity,
		"amenities":     doc.Amenities,
		"images":        doc.Images,
		"isAvailable":   doc.IsAvailable,
		"updatedAt":     doc.UpdatedAt,
	}
	return updateByID(ctx, r.coll, doc.ID, set, "room")
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, "room")
}
