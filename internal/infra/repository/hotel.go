package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(database *mongo.Database) *HotelRepository {
	return &HotelRepository{coll: database.Collection(db.HotelsCollection)}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (string, error) {
	doc := document.FromHotel(h)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to insert hotel", err)
	}
	return doc.ID.Hex(), nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*hotel.Hotel, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid hotel id", nil)
	}
	var doc document.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find hotel", err)
	}
	return doc.ToDomain(), nil
}

// Update replaces every mutable field; createdAt is preserved.
func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	doc := document.FromHotel(h)
	set := bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"location":    doc.Location,
		"rating":      doc.Rating,
		"price":       doc.Price,
		"images":      doc.Images,
		"amenities":   doc.Amenities,
		"updatedAt":   doc.UpdatedAt,
	}
	return updateByID(ctx, r.coll, doc.ID, set, "hotel")
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, "hotel")
}
