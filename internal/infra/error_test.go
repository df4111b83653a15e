//go:build unit

package infra_test

import (
	"io"
	"log/slog"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestClassifyMongoErr(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}

	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no documents", err: mongo.ErrNoDocuments, want: infra.KindNotFound},
		{name: "wrapped no documents", err: errs.Wrap(mongo.ErrNoDocuments, "find booking"), want: infra.KindNotFound},
		{name: "duplicate key", err: dup, want: infra.KindDuplicateKey},
		{name: "anything else", err: mongo.ErrClientDisconnected, want: infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.ClassifyMongoErr(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("keeps the cause reachable", func(t *testing.T) {
		err := infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to insert booking", mongo.ErrClientDisconnected)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, mongo.ErrClientDisconnected)
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to insert booking")
	})

	t.Run("without a cause", func(t *testing.T) {
		err := infra.WrapRepoErr(logger, infra.KindNotFound, "hotel not found", nil)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: hotel not found", err.Error())
	})

	t.Run("survives wrapping by callers", func(t *testing.T) {
		err := errs.Wrap(infra.WrapRepoErr(logger, infra.KindDuplicateKey, "email taken", nil), "register")
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("foreign errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errs.New("boom"), infra.KindDBFailure))
	})
}
