package readstore

import (
	"context"

	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessReadQueries interface {
	GetBusinessByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Businesses, error)
	GetBusinessByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Businesses, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error) {
	row, err := r.queries.GetBusinessByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find business by ID", err)
	}
	return toBusinessView(row), nil
}

func (r *BusinessReadStore) FindByOwner(ctx context.Context, userID uuid.UUID) (*queries.BusinessView, error) {
	row, err := r.queries.GetBusinessByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find business by owner", err)
	}
	return toBusinessView(row), nil
}

func toBusinessView(row sqlc.Businesses) *queries.BusinessView {
	return &queries.BusinessView{
		ID:      row.ID,
		OwnerID: row.UserID,
		Name:    row.Name,
	}
}
