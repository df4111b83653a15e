package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(database *mongo.Database) *TransactionRepository {
	return &TransactionRepository{coll: database.Collection(db.TransactionsCollection)}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) (string, error) {
	doc := document.FromTransaction(t)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to insert transaction", err)
	}
	return doc.ID.Hex(), nil
}
