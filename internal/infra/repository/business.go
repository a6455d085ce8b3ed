package repository

import (
	"context"

	"feedbackpro/internal/domain/business"
	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
)

type BusinessWriteQueries interface {
	CreateBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBusinessParams) (sqlc.Businesses, error)
}

type BusinessRepository struct {
	queries BusinessWriteQueries
	db      sqlc.DBTX
}

func NewBusinessRepository(queries BusinessWriteQueries, db sqlc.DBTX) *BusinessRepository {
	return &BusinessRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	_, err := r.queries.CreateBusiness(ctx, r.db, sqlc.CreateBusinessParams{
		ID:        b.ID(),
		UserID:    b.OwnerID(),
		Name:      b.Name(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create business", err)
	}
	return nil
}
