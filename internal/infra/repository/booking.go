package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(database *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: database.Collection(db.BookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (string, error) {
	doc := document.FromBooking(b)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to insert booking", err)
	}
	return doc.ID.Hex(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	oid, ok := document.ObjectID(id)
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invalid booking id", nil)
	}
	var doc document.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to find booking", err)
	}
	return doc.ToDomain(), nil
}

// Save writes the lifecycle fields only; the rest of a booking is immutable after creation.
// The write is conditional on the version the booking was loaded at, so a concurrent
// transition is reported as CONFLICT instead of being overwritten.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	doc := document.FromBooking(b)
	if doc.ID.IsZero() {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking has no id", nil)
	}
	set := bson.M{
		"status":        doc.Status,
		"paymentStatus": doc.PaymentStatus,
		"updatedAt":     doc.UpdatedAt,
	}
	if doc.PaymentOrderID != "" {
		set["paymentOrderId"] = doc.PaymentOrderID
	}

	filter := bson.M{"_id": doc.ID, "version": versionFilter(doc.Version)}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set, "$inc": bson.M{"version": 1}})
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to update booking", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": doc.ID})
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyMongoErr(err), "failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return infra.WrapRepoErr(slog.Default(), infra.KindConflict, "booking changed since it was loaded", nil)
}

// versionFilter treats a missing version field as 0.
func versionFilter(v int64) any {
	if v == 0 {
		return bson.M{"$in": bson.A{0, nil}}
	}
	return v
}
