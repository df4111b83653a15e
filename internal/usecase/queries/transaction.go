package queries

import (
	"context"

	"hotel-booking/internal/usecase/shared"
)

type TransactionReadStore interface {
	ListByUser(ctx context.Context, userID string) ([]*TransactionView, error)
}

type TransactionQueries interface {
	ListMine(ctx context.Context, identity shared.Identity) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) ListMine(ctx context.Context, identity shared.Identity) ([]*TransactionView, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	rows, err := q.store.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*TransactionView{}
	}
	return rows, nil
}
