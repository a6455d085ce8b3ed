package readstore

import (
	"context"

	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResponseEntityReadQueries interface {
	GetResponseEntityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResponseEntityByIDRow, error)
}

type ResponseEntityReadStore struct {
	queries ResponseEntityReadQueries
	db      sqlc.DBTX
}

func NewResponseEntityReadStore(queries ResponseEntityReadQueries, db sqlc.DBTX) *ResponseEntityReadStore {
	return &ResponseEntityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResponseEntityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResponseEntityView, error) {
	row, err := r.queries.GetResponseEntityByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find response entity", err)
	}

	return &queries.ResponseEntityView{
		ID:           row.ID,
		SurveyID:     row.SurveyID,
		BusinessID:   row.BusinessID,
		DeliveryType: row.Type,
		PhoneNumber:  pgconv.StringPtrFromPgtype(row.PhoneNumber),
		Status:       row.Status,
		SubmittedAt:  pgconv.TimePtrFromPgtype(row.SubmittedAt),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
