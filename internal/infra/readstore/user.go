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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserReadStore struct {
	coll *mongo.Collection
}

func NewUserReadStore(database *mongo.Database) *UserReadStore {
	return &UserReadStore{coll: database.Collection(db.UsersCollection)}
}

func (s *UserReadStore) FindByID(ctx context.Context, id string) (*queries.UserView, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid user id", nil)
	}
	var doc document.User
	opts := options.FindOne().SetProjection(bson.D{{Key: "password", Value: 0}})
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find user", err)
	}
	return doc.ToView(), nil
}
