package converter

import (
	"time"

	"feedbackpro/internal/domain/response"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ResponseEntityToCreateParams(e *response.ResponseEntity) sqlc.CreateResponseEntityParams {
	var phone *string
	if p := e.PhoneNumber(); p != nil {
		s := p.String()
		phone = &s
	}
	return sqlc.CreateResponseEntityParams{
		ID:          e.ID(),
		SurveyID:    e.SurveyID(),
		Type:        e.DeliveryType().String(),
		PhoneNumber: pgconv.StringPtrToPgtype(phone),
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func AnswersToCreateParams(responseEntityID uuid.UUID, answers []response.Answer, at time.Time) []sqlc.CreateResponsesParams {
	params := make([]sqlc.CreateResponsesParams, 0, len(answers))
	for _, a := range answers {
		params = append(params, sqlc.CreateResponsesParams{
			ID:               uuid.New(),
			ResponseEntityID: responseEntityID,
			QuestionID:       a.QuestionID(),
			Value:            a.Value(),
			CreatedAt:        pgconv.TimeToPgtype(at),
		})
	}
	return params
}
