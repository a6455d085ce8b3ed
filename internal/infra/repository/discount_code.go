package repository

import (
	"context"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/infra/repository/converter"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountCodeWriteQueries interface {
	DiscountCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	InsertDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDiscountCodeParams) (sqlc.DiscountCodes, error)
	RedeemDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemDiscountCodeParams) (sqlc.DiscountCodes, error)
}

type DiscountCodeRepository struct {
	queries DiscountCodeWriteQueries
	db      sqlc.DBTX
}

func NewDiscountCodeRepository(queries DiscountCodeWriteQueries, db sqlc.DBTX) *DiscountCodeRepository {
	return &DiscountCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountCodeRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.DiscountCodeExists(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check discount code existence", err)
	}
	return exists, nil
}

// Insert returns the stored row, or nil when the response entity already holds a code.
// A collision on the code itself surfaces as a DUPLICATE_KEY error on discount_codes_code_key.
func (r *DiscountCodeRepository) Insert(ctx context.Context, d *discount.DiscountCode) (*discount.DiscountCode, error) {
	row, err := r.queries.InsertDiscountCode(ctx, r.db, converter.DiscountCodeToInsertParams(d))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to insert discount code", err)
	}

	saved, err := converter.DiscountCodeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read inserted discount code", err, infra.KindDBFailure)
	}
	return saved, nil
}

func (r *DiscountCodeRepository) MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	_, err := r.queries.RedeemDiscountCode(ctx, r.db, sqlc.RedeemDiscountCodeParams{
		Now: pgconv.TimeToPgtype(at),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to redeem discount code", err)
	}
	return true, nil
}
