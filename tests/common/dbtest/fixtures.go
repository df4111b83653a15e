//go:build unit || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain password of every fixture user.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

// passwordHash uses the minimum bcrypt cost to keep fixture setup fast.
func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

func CreateTestUser(t *testing.T, database *mongo.Database, email, role string) string {
	t.Helper()

	ctx := context.Background()
	var existing document.User
	err := database.Collection(db.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return existing.ID.Hex()
	}
	require.ErrorIs(t, err, mongo.ErrNoDocuments)

	doc := builder.NewUserBuilder().
		WithEmail(email).
		WithRole(role).
		WithPasswordHash(passwordHash(t)).
		BuildDocument()
	_, err = database.Collection(db.UsersCollection).InsertOne(ctx, doc)
	require.NoError(t, err)

	return doc.ID.Hex()
}

func CreateTestHotel(t *testing.T, database *mongo.Database, b *builder.HotelBuilder) string {
	t.Helper()
	return insert(t, database, db.HotelsCollection, b.BuildDocument())
}

func CreateTestRoom(t *testing.T, database *mongo.Database, b *builder.RoomBuilder) string {
	t.Helper()
	return insert(t, database, db.RoomsCollection, b.BuildDocument())
}

func CreateTestBooking(t *testing.T, database *mongo.Database, b *builder.BookingBuilder) string {
	t.Helper()
	return insert(t, database, db.BookingsCollection, b.BuildDocument())
}

func insert(t *testing.T, database *mongo.Database, collection string, doc any) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.Collection(collection).InsertOne(ctx, doc)
	require.NoError(t, err)
	oid, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok, "unexpected id type %T", res.InsertedID)
	return oid.Hex()
}

// ResetDB empties every collection and keeps the indexes.
func ResetDB(database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{
		db.UsersCollection,
		db.HotelsCollection,
		db.RoomsCollection,
		db.BookingsCollection,
		db.TransactionsCollection,
	} {
		if _, err := database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
