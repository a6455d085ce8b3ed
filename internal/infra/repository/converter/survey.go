package converter

import (
	"feedbackpro/internal/domain/survey"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/usecase/shared"
)

func SurveyToCreateParams(s *survey.Survey) sqlc.CreateSurveyParams {
	return sqlc.CreateSurveyParams{
		ID:          s.ID(),
		BusinessID:  s.BusinessID(),
		Name:        s.Name(),
		Description: pgconv.StringPtrToPgtype(s.Description()),
		Status:      s.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func QuestionsToCreateParams(s *survey.Survey) []sqlc.CreateQuestionsParams {
	qs := s.Questions()
	params := make([]sqlc.CreateQuestionsParams, 0, len(qs))
	for _, q := range qs {
		params = append(params, sqlc.CreateQuestionsParams{
			ID:         q.ID(),
			SurveyID:   s.ID(),
			Text:       q.Text(),
			Type:       q.Type().String(),
			Position:   pgconv.IntToInt32(q.Position()),
			IsRequired: q.IsRequired(),
			CreatedAt:  pgconv.TimeToPgtype(s.CreatedAt()),
		})
	}
	return params
}

func SurveySnapshotToUpdateParams(s *shared.SurveySnapshot) sqlc.UpdateSurveyParams {
	return sqlc.UpdateSurveyParams{
		ID:          s.ID,
		Name:        s.Name,
		Description: pgconv.StringPtrToPgtype(s.Description),
		Status:      s.Status.String(),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt),
	}
}
