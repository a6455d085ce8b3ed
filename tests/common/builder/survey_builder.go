//go:build unit || e2e

package builder

import (
	"time"

	"feedbackpro/internal/domain/survey"
	reqdto "feedbackpro/internal/handler/dto/request"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuestionSpec struct {
	ID         uuid.UUID
	Text       string
	Type       survey.QuestionType
	IsRequired bool
}

type SurveyBuilder struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string
	OwnerID      uuid.UUID
	Name         string
	Description  *string
	Status       survey.Status
	Questions    []QuestionSpec
	Now          time.Time
}

func NewSurveyBuilder() *SurveyBuilder {
	description := "Tell us about your visit"
	return &SurveyBuilder{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		BusinessName: "Test Cafe",
		OwnerID:      uuid.New(),
		Name:         "Customer Satisfaction",
		Description:  &description,
		Status:       survey.StatusActive,
		Questions: []QuestionSpec{
			{ID: uuid.New(), Text: "How was the service?", Type: survey.QuestionRatingScale5, IsRequired: true},
			{ID: uuid.New(), Text: "Would you come back?", Type: survey.QuestionYesNo, IsRequired: true},
			{ID: uuid.New(), Text: "Anything else?", Type: survey.QuestionText, IsRequired: false},
		},
		Now: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (b *SurveyBuilder) With(mutate func(*SurveyBuilder)) *SurveyBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SurveyBuilder) BuildCreateDTO() reqdto.CreateSurveyRequest {
	questions := make([]reqdto.QuestionRequest, 0, len(b.Questions))
	for _, q := range b.Questions {
		required := q.IsRequired
		questions = append(questions, reqdto.QuestionRequest{
			Text:       q.Text,
			Type:       q.Type.String(),
			IsRequired: &required,
		})
	}
	return reqdto.CreateSurveyRequest{
		Name:        b.Name,
		Description: b.Description,
		Questions:   questions,
	}
}

func (b *SurveyBuilder) BuildSnapshot() *shared.SurveySnapshot {
	questions := make([]shared.QuestionSnapshot, 0, len(b.Questions))
	for i, q := range b.Questions {
		questions = append(questions, shared.QuestionSnapshot{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Position:   i,
			IsRequired: q.IsRequired,
		})
	}
	return &shared.SurveySnapshot{
		ID:           b.ID,
		BusinessID:   b.BusinessID,
		BusinessName: b.BusinessName,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Status:       b.Status,
		Questions:    questions,
		UpdatedAt:    b.Now,
	}
}

func (b *SurveyBuilder) BuildView() *queries.SurveyView {
	questions := make([]queries.QuestionView, 0, len(b.Questions))
	for i, q := range b.Questions {
		questions = append(questions, queries.QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type.String(),
			Position:   int32(i), // #nosec G115 -- test data
			IsRequired: q.IsRequired,
		})
	}
	return &queries.SurveyView{
		ID:           b.ID,
		BusinessID:   b.BusinessID,
		BusinessName: b.BusinessName,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Status:       b.Status.String(),
		Questions:    questions,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *SurveyBuilder) BuildListItem() *queries.SurveyListItem {
	return &queries.SurveyListItem{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Status:        b.Status.String(),
		QuestionCount: int64(len(b.Questions)),
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

// Fluent builder methods
func (b *SurveyBuilder) WithName(name string) *SurveyBuilder {
	b.Name = name
	return b
}

func (b *SurveyBuilder) WithStatus(status survey.Status) *SurveyBuilder {
	b.Status = status
	return b
}

func (b *SurveyBuilder) WithOwner(ownerID, businessID uuid.UUID) *SurveyBuilder {
	b.OwnerID = ownerID
	b.BusinessID = businessID
	return b
}

func (b *SurveyBuilder) WithQuestions(qs ...QuestionSpec) *SurveyBuilder {
	b.Questions = qs
	return b
}

func (b *SurveyBuilder) QuestionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Questions))
	for _, q := range b.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}
