package queries

import (
	"context"

	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrUserNotFound means a still-valid token names a user that no longer exists.
var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueries{store: store}
}

// GetCurrentUser backs /auth/me and the login response body. A deactivated
// account reports shared.ErrInactiveAccount, the error every authorized
// operation returns for it.
func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case !view.IsActive:
		return nil, shared.ErrInactiveAccount
	}
	return view, nil
}
