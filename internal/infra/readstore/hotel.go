package readstore

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HotelReadStore struct {
	coll *mongo.Collection
}

func NewHotelReadStore(database *mongo.Database) *HotelReadStore {
	return &HotelReadStore{coll: database.Collection(db.HotelsCollection)}
}

func (s *HotelReadStore) FindByID(ctx context.Context, id string) (*queries.HotelView, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid hotel id", nil)
	}
	var doc document.Hotel
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find hotel", err)
	}
	return doc.ToView(), nil
}

func (s *HotelReadStore) List(ctx context.Context, filter queries.HotelFilter, sort queries.SortSpec) ([]*queries.HotelView, int64, error) {
	f := commonFilter(filter.ListParams)
	if price := rangeClause(filter.MinPrice, filter.MaxPrice); len(price) > 0 {
		f = append(f, bson.E{Key: "price", Value: price})
	}
	if filter.MinRating != nil {
		f = append(f, bson.E{Key: "rating", Value: bson.M{"$gte": *filter.MinRating}})
	}

	docs, total, err := findPage[document.Hotel](ctx, s.coll, f, filter.ListParams, sort)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*queries.HotelView, 0, len(docs))
	for _, d := range docs {
		views = append(views, d.ToView())
	}
	return views, total, nil
}

// SearchByAddress matches the address case-insensitively; ALL returns every hotel.
func (s *HotelReadStore) SearchByAddress(ctx context.Context, location string) ([]*queries.HotelView, error) {
	filter := bson.M{}
	if location != "" && !strings.EqualFold(location, queries.SearchAll) {
		filter["location.address"] = primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"}
	}
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to search hotels", err)
	}
	var docs []document.Hotel
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode hotels", err)
	}
	views := make([]*queries.HotelView, 0, len(docs))
	for _, d := range docs {
		views = append(views, d.ToView())
	}
	return views, nil
}
