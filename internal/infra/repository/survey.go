package repository

import (
	"context"

	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/infra/repository/converter"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type SurveyWriteQueries interface {
	CreateSurvey(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSurveyParams) (sqlc.Surveys, error)
	CreateQuestions(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateQuestionsParams) (int64, error)
	UpdateSurvey(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSurveyParams) (int64, error)
	DeleteSurvey(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SurveyRepository struct {
	queries SurveyWriteQueries
	db      sqlc.DBTX
}

func NewSurveyRepository(queries SurveyWriteQueries, db sqlc.DBTX) *SurveyRepository {
	return &SurveyRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the survey row and copies its questions in one round trip.
func (r *SurveyRepository) Create(ctx context.Context, s *survey.Survey) error {
	if _, err := r.queries.CreateSurvey(ctx, r.db, converter.SurveyToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create survey", err)
	}
	if _, err := r.queries.CreateQuestions(ctx, r.db, converter.QuestionsToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create questions", err)
	}
	return nil
}

func (r *SurveyRepository) Update(ctx context.Context, snap *shared.SurveySnapshot) (bool, error) {
	n, err := r.queries.UpdateSurvey(ctx, r.db, converter.SurveySnapshotToUpdateParams(snap))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update survey", err)
	}
	return n == 1, nil
}

func (r *SurveyRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteSurvey(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete survey", err)
	}
	return n == 1, nil
}
