package readstore

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoomReadStore struct {
	coll *mongo.Collection
}

func NewRoomReadStore(database *mongo.Database) *RoomReadStore {
	return &RoomReadStore{coll: database.Collection(db.RoomsCollection)}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id string) (*queries.RoomView, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid room id", nil)
	}
	var doc document.Room
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find room", err)
	}
	return doc.ToView(), nil
}

func (s *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter, sort queries.SortSpec) ([]*queries.RoomView, int64, error) {
	f := commonFilter(filter.ListParams)
	if price := rangeClause(filter.MinPrice, filter.MaxPrice); len(price) > 0 {
		f = append(f, bson.E{Key: "pricePerNight", Value: price})
	}
	if filter.MinCapacity != nil {
		f = append(f, bson.E{Key: "capacity", Value: bson.M{"$gte": *filter.MinCapacity}})
	}
	if filter.Available != nil {
		f = append(f, bson.E{Key: "isAvailable", Value: *filter.Available})
	}
	if filter.HotelID != "" {
		oid, ok := document.ObjectID(filter.HotelID)
		if !ok {
			return []*queries.RoomView{}, 0, nil
		}
		f = append(f, bson.E{Key: "hotel", Value: oid})
	}

	docs, total, err := findPage[document.Room](ctx, s.coll, f, filter.ListParams, sort)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*queries.RoomView, 0, len(docs))
	for _, d := range docs {
		views = append(views, d.ToView())
	}
	return views, total, nil
}
