package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func updateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M, entity string) error {
	if id.IsZero() {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, entity+" has no id", nil)
	}
	res, err := coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to update "+entity, err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, entity+" not found", nil)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id, entity string) error {
	oid, ok := document.ObjectID(id)
	if !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid "+entity+" id", nil)
	}
	err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to delete "+entity, err)
	}
	return nil
}
