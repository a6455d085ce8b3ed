package repository

import (
	"context"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/infra/repository/converter"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var errPartialAnswerCopy = errs.New("copied fewer answers than submitted")

type ResponseEntityWriteQueries interface {
	CreateResponseEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResponseEntityParams) (sqlc.ResponseEntities, error)
	CompleteResponseEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteResponseEntityParams) (int64, error)
	CreateResponses(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateResponsesParams) (int64, error)
}

type ResponseEntityRepository struct {
	queries ResponseEntityWriteQueries
	db      sqlc.DBTX
}

func NewResponseEntityRepository(queries ResponseEntityWriteQueries, db sqlc.DBTX) *ResponseEntityRepository {
	return &ResponseEntityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResponseEntityRepository) Create(ctx context.Context, e *response.ResponseEntity) error {
	if _, err := r.queries.CreateResponseEntity(ctx, r.db, converter.ResponseEntityToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to create response entity", err)
	}
	return nil
}

// MarkCompleted only touches PENDING rows, so concurrent submitters see exactly one success.
func (r *ResponseEntityRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.CompleteResponseEntity(ctx, r.db, sqlc.CompleteResponseEntityParams{
		ID:          id,
		SubmittedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete response entity", err)
	}
	return n == 1, nil
}

func (r *ResponseEntityRepository) SaveAnswers(ctx context.Context, responseEntityID uuid.UUID, answers []response.Answer, at time.Time) error {
	params := converter.AnswersToCreateParams(responseEntityID, answers, at)
	n, err := r.queries.CreateResponses(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to save answers", err)
	}
	if n != int64(len(params)) {
		return infra.WrapRepoErr("failed to save answers", errPartialAnswerCopy, infra.KindDBFailure)
	}
	return nil
}
