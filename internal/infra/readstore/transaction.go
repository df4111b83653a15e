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

type TransactionReadStore struct {
	coll *mongo.Collection
}

func NewTransactionReadStore(database *mongo.Database) *TransactionReadStore {
	return &TransactionReadStore{coll: database.Collection(db.TransactionsCollection)}
}

func (s *TransactionReadStore) ListByUser(ctx context.Context, userID string) ([]*queries.TransactionView, error) {
	oid, ok := document.ObjectID(userID)
	if !ok {
		return []*queries.TransactionView{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: oid}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.BookingsCollection},
			{Key: "localField", Value: "booking"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "bookingDoc"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$bookingDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to query transactions", err)
	}
	var rows []document.TransactionRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode transactions", err)
	}
	views := make([]*queries.TransactionView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.ToView())
	}
	return views, nil
}
