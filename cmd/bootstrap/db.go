package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewMongoClient,
		NewDatabase,
	),
)

func NewMongoClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, err := db.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		return nil, err
	}
	logger.Info("MongoDBに接続しました", "database", cfg.Mongo.Database)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

// NewDatabase creates missing indexes before the server starts accepting requests.
func NewDatabase(lc fx.Lifecycle, client *mongo.Client, cfg config.Config) *mongo.Database {
	database := client.Database(cfg.Mongo.Database)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.EnsureIndexes(ctx, database)
		},
	})

	return database
}
