package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{coll: database.Collection(db.UsersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	doc := document.FromUser(u)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to insert user", err)
	}
	return doc.ID.Hex(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "user not found by email")
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid user id", nil)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, "user not found by id")
}

func (r *UserRepository) UpdatePicture(ctx context.Context, id, picture string, now time.Time) error {
	oid, ok := document.ObjectID(id)
	if !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid user id", nil)
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"picture": picture, "updatedAt": now}})
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update user picture", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, notFoundMsg string) (*user.User, error) {
	var doc document.User
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		kind := infra.ClassifyMongoErr(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(slog.Default(), kind, notFoundMsg, err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), kind, "failed to find user", err)
	}
	u, err := doc.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "stored user is invalid", err)
	}
	return u, nil
}
