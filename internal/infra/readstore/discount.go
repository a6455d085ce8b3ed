package readstore

import (
	"context"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountReadQueries interface {
	GetDiscountCodeByResponseEntity(ctx context.Context, db sqlc.DBTX, responseEntityID uuid.UUID) (sqlc.DiscountCodes, error)
	GetDiscountCodeByCodeForBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDiscountCodeByCodeForBusinessParams) (sqlc.DiscountCodes, error)
	ListDiscountCodesByBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDiscountCodesByBusinessParams) ([]sqlc.ListDiscountCodesByBusinessRow, error)
	CountDiscountCodesByBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.CountDiscountCodesByBusinessParams) (int64, error)
}

type DiscountReadStore struct {
	queries DiscountReadQueries
	db      sqlc.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db sqlc.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountReadStore) FindByResponseEntity(ctx context.Context, responseEntityID uuid.UUID) (*queries.DiscountCodeView, error) {
	row, err := r.queries.GetDiscountCodeByResponseEntity(ctx, r.db, responseEntityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount code by response entity", err)
	}
	return toDiscountCodeView(row)
}

// FindByCode expects an already normalized code.
func (r *DiscountReadStore) FindByCode(ctx context.Context, businessID uuid.UUID, code string) (*queries.DiscountCodeView, error) {
	row, err := r.queries.GetDiscountCodeByCodeForBusiness(ctx, r.db, sqlc.GetDiscountCodeByCodeForBusinessParams{
		Code:       code,
		BusinessID: businessID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}
	return toDiscountCodeView(row)
}

func (r *DiscountReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, filter discount.StatusFilter, now time.Time, limit, offset int32) ([]*queries.DiscountCodeView, error) {
	rows, err := r.queries.ListDiscountCodesByBusiness(ctx, r.db, sqlc.ListDiscountCodesByBusinessParams{
		BusinessID: businessID,
		Status:     string(filter),
		Now:        pgconv.TimeToPgtype(now),
		RowLimit:   limit,
		RowOffset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount codes", err)
	}

	items := make([]*queries.DiscountCodeView, 0, len(rows))
	for _, row := range rows {
		v, err := toDiscountCodeView(sqlc.DiscountCodes{
			ID:               row.ID,
			Code:             row.Code,
			DiscountType:     row.DiscountType,
			DiscountValue:    row.DiscountValue,
			ExpiresAt:        row.ExpiresAt,
			IsRedeemed:       row.IsRedeemed,
			RedeemedAt:       row.RedeemedAt,
			BusinessID:       row.BusinessID,
			ResponseEntityID: row.ResponseEntityID,
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
		v.ResponseEntity.DeliveryType = row.ResponseType
		v.ResponseEntity.PhoneNumber = pgconv.StringPtrFromPgtype(row.PhoneNumber)
		v.ResponseEntity.SubmittedAt = pgconv.TimePtrFromPgtype(row.SubmittedAt)
		items = append(items, v)
	}
	return items, nil
}

func (r *DiscountReadStore) CountByBusiness(ctx context.Context, businessID uuid.UUID, filter discount.StatusFilter, now time.Time) (int64, error) {
	n, err := r.queries.CountDiscountCodesByBusiness(ctx, r.db, sqlc.CountDiscountCodesByBusinessParams{
		BusinessID: businessID,
		Status:     string(filter),
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count discount codes", err)
	}
	return n, nil
}

func toDiscountCodeView(row sqlc.DiscountCodes) (*queries.DiscountCodeView, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount value", err, infra.KindDBFailure)
	}

	return &queries.DiscountCodeView{
		ID:            row.ID,
		Code:          row.Code,
		DiscountType:  row.DiscountType,
		DiscountValue: value,
		ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		IsRedeemed:    row.IsRedeemed,
		RedeemedAt:    pgconv.TimePtrFromPgtype(row.RedeemedAt),
		BusinessID:    row.BusinessID,
		ResponseEntity: queries.DiscountResponseSummary{
			ID: row.ResponseEntityID,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
