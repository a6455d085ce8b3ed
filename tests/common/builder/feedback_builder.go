//go:build unit || e2e

package builder

import (
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	reqdto "feedbackpro/internal/handler/dto/request"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

// ResponseEntityBuilder builds feedback links and the answers submitted through them.
type ResponseEntityBuilder struct {
	ID           uuid.UUID
	SurveyID     uuid.UUID
	BusinessID   uuid.UUID
	DeliveryType response.DeliveryType
	PhoneNumber  *string
	Status       response.Status
	SubmittedAt  *time.Time
	Now          time.Time
	Answers      map[uuid.UUID]string
}

func NewResponseEntityBuilder() *ResponseEntityBuilder {
	phone := "+15551234567"
	return &ResponseEntityBuilder{
		ID:           uuid.New(),
		SurveyID:     uuid.New(),
		BusinessID:   uuid.New(),
		DeliveryType: response.DeliveryDirectSMS,
		PhoneNumber:  &phone,
		Status:       response.StatusPending,
		Now:          time.Now().UTC().Truncate(time.Microsecond),
		Answers:      map[uuid.UUID]string{},
	}
}

func (b *ResponseEntityBuilder) With(mutate func(*ResponseEntityBuilder)) *ResponseEntityBuilder {
	mutate(b)
	return b
}

// ForSurvey links the entity to the survey and answers each of its questions.
func (b *ResponseEntityBuilder) ForSurvey(s *SurveyBuilder) *ResponseEntityBuilder {
	b.SurveyID = s.ID
	b.BusinessID = s.BusinessID
	b.Answers = make(map[uuid.UUID]string, len(s.Questions))
	for _, q := range s.Questions {
		switch q.Type {
		case survey.QuestionRatingScale5:
			b.Answers[q.ID] = "5"
		case survey.QuestionYesNo:
			b.Answers[q.ID] = "yes"
		default:
			b.Answers[q.ID] = "Great coffee"
		}
	}
	return b
}

// Build methods
func (b *ResponseEntityBuilder) BuildSnapshot() *shared.ResponseEntitySnapshot {
	return &shared.ResponseEntitySnapshot{
		ID:           b.ID,
		SurveyID:     b.SurveyID,
		BusinessID:   b.BusinessID,
		DeliveryType: b.DeliveryType,
		PhoneNumber:  b.PhoneNumber,
		Status:       b.Status,
		SubmittedAt:  b.SubmittedAt,
		CreatedAt:    b.Now,
	}
}

func (b *ResponseEntityBuilder) BuildView() *queries.ResponseEntityView {
	return &queries.ResponseEntityView{
		ID:           b.ID,
		SurveyID:     b.SurveyID,
		BusinessID:   b.BusinessID,
		DeliveryType: b.DeliveryType.String(),
		PhoneNumber:  b.PhoneNumber,
		Status:       b.Status.String(),
		SubmittedAt:  b.SubmittedAt,
		CreatedAt:    b.Now,
	}
}

func (b *ResponseEntityBuilder) BuildSubmitDTO() reqdto.SubmitFeedbackRequest {
	answers := make([]reqdto.AnswerRequest, 0, len(b.Answers))
	for qid, v := range b.Answers {
		answers = append(answers, reqdto.AnswerRequest{QuestionID: qid.String(), Answer: v})
	}
	return reqdto.SubmitFeedbackRequest{
		SurveyID:         b.SurveyID.String(),
		ResponseEntityID: b.ID.String(),
		Answers:          answers,
	}
}

func (b *ResponseEntityBuilder) BuildAnswers() []response.Answer {
	out := make([]response.Answer, 0, len(b.Answers))
	for qid, v := range b.Answers {
		a, err := response.NewAnswer(qid, v)
		if err != nil {
			panic(err)
		}
		out = append(out, a)
	}
	return out
}

// Fluent builder methods
func (b *ResponseEntityBuilder) WithDeliveryType(t response.DeliveryType) *ResponseEntityBuilder {
	b.DeliveryType = t
	if t == response.DeliveryQR {
		b.PhoneNumber = nil
	}
	return b
}

func (b *ResponseEntityBuilder) AsCompleted(at time.Time) *ResponseEntityBuilder {
	b.Status = response.StatusCompleted
	b.SubmittedAt = &at
	return b
}

func (b *ResponseEntityBuilder) WithAnswer(questionID uuid.UUID, value string) *ResponseEntityBuilder {
	b.Answers[questionID] = value
	return b
}
