package readstore

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// findPage runs the page query and the count concurrently against the same filter.
func findPage[D any](ctx context.Context, coll *mongo.Collection, filter bson.D, params queries.ListParams, sort queries.SortSpec) ([]D, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Field, Value: int(sort.Order)}, {Key: "_id", Value: int(sort.Order)}}).
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit))

	var (
		docs  []D
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := coll.Find(gctx, filter, opts)
		if err != nil {
			return err
		}
		return cur.All(gctx, &docs)
	})
	g.Go(func() error {
		n, err := coll.CountDocuments(gctx, filter)
		total = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list "+coll.Name(), err)
	}
	return docs, total, nil
}

// commonFilter adds the $text and amenities clauses shared by hotel and room listings.
func commonFilter(params queries.ListParams) bson.D {
	filter := bson.D{}
	if params.Search != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.M{"$search": params.Search}})
	}
	if len(params.Amenities) > 0 {
		filter = append(filter, bson.E{Key: "amenities", Value: bson.M{"$all": params.Amenities}})
	}
	return filter
}

func rangeClause(minV, maxV *float64) bson.M {
	clause := bson.M{}
	if minV != nil {
		clause["$gte"] = *minV
	}
	if maxV != nil {
		clause["$lte"] = *maxV
	}
	return clause
}
