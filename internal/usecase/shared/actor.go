package shared

import (
	"context"

	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrBusinessAccessDenied is generic so callers cannot probe which businesses exist.
	ErrBusinessAccessDenied = errs.NewAccessDenied("You do not have access to this business")
	ErrInactiveAccount      = errs.NewAccessDenied("account is inactive")
)

// Actor is the authenticated caller of an owner operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.SeesAllBusinesses()
}

// RequireActive fails unless the actor's account exists and is active.
func RequireActive(ctx context.Context, dir Directory, actor Actor) (*UserSnapshot, error) {
	u, err := dir.UserByID(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInactiveAccount
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}
	return u, nil
}

// AuthorizeBusiness checks that an active actor owns the business. Admins may act on any business.
func AuthorizeBusiness(ctx context.Context, dir Directory, actor Actor, businessID uuid.UUID) (*BusinessSnapshot, error) {
	if _, err := RequireActive(ctx, dir, actor); err != nil {
		return nil, err
	}

	b, err := dir.BusinessByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessAccessDenied
		}
		return nil, err
	}
	if b.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrBusinessAccessDenied
	}
	return b, nil
}

// OwnedBusiness returns the business owned by an active actor.
func OwnedBusiness(ctx context.Context, dir Directory, actor Actor) (*BusinessSnapshot, error) {
	if _, err := RequireActive(ctx, dir, actor); err != nil {
		return nil, err
	}
	b, err := dir.BusinessByOwner(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessAccessDenied
		}
		return nil, err
	}
	return b, nil
}
