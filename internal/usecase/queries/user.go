package queries

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

var ErrUserNotFound = errs.NotFound("User not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id string) (*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, identity shared.Identity) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, identity shared.Identity) (*UserView, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, identity.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
