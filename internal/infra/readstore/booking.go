package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingReadStore struct {
	coll *mongo.Collection
}

func NewBookingReadStore(database *mongo.Database) *BookingReadStore {
	return &BookingReadStore{coll: database.Collection(db.BookingsCollection)}
}

var newestFirst = bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}}

// withOwner joins name and email of the booking's user. Bookings of deleted users keep an empty owner.
func withOwner() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.UsersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "owner.password", Value: 0}}}},
	}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id string) (*queries.BookingView, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid booking id", nil)
	}
	pipeline := append(mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}}}, withOwner()...)
	rows, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return rows[0], nil
}

func (s *BookingReadStore) ListByUser(ctx context.Context, userID string) ([]*queries.BookingView, error) {
	oid, ok := document.ObjectID(userID)
	if !ok {
		return []*queries.BookingView{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: oid}}}},
		newestFirst,
	}
	return s.aggregate(ctx, append(pipeline, withOwner()...))
}

func (s *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	return s.aggregate(ctx, append(mongo.Pipeline{newestFirst}, withOwner()...))
}

// Stats computes every figure in one $facet pass. Months are bucketed in UTC.
func (s *BookingReadStore) Stats(ctx context.Context, since time.Time, topHotels, recent int) (*queries.BookingStats, error) {
	countAndRevenue := func(key any) bson.D {
		return bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: key},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}}
	}

	recentPipeline := bson.A{newestFirst, bson.D{{Key: "$limit", Value: recent}}}
	for _, stage := range withOwner() {
		recentPipeline = append(recentPipeline, stage)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "totals", Value: bson.A{countAndRevenue(nil)}},
			{Key: "byStatus", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$status"},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
			}},
			{Key: "monthly", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}}}}},
				countAndRevenue(bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m"},
					{Key: "date", Value: "$createdAt"},
				}}}),
				bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
			{Key: "topHotels", Value: bson.A{
				countAndRevenue("$hotelName"),
				bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
				bson.D{{Key: "$limit", Value: topHotels}},
			}},
			{Key: "recent", Value: recentPipeline},
		}}},
	}

	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to aggregate booking stats", err)
	}
	var out []document.BookingStats
	if err := cur.All(ctx, &out); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode booking stats", err)
	}
	if len(out) == 0 {
		return document.BookingStats{}.ToView(), nil
	}
	return out[0].ToView(), nil
}

func (s *BookingReadStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*queries.BookingView, error) {
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to query bookings", err)
	}
	var rows []document.BookingRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode bookings", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.ToView())
	}
	return views, nil
}
