package queries

import (
	"context"

	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFeedbackLinkInvalid = errs.New("Invalid feedback link. Please check the URL and try again.")
	ErrFeedbackSubmitted   = errs.New("Feedback has already been submitted for this link.")
)

const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
)

type ResponseEntityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResponseEntityView, error)
}

type FeedbackQueries interface {
	GetForm(ctx context.Context, responseEntityID uuid.UUID) (*FeedbackFormView, error)
}

type feedbackQueriesImpl struct {
	entities ResponseEntityReadStore
	surveys  SurveyReadStore
}

func NewFeedbackQueries(entities ResponseEntityReadStore, surveys SurveyReadStore) FeedbackQueries {
	return &feedbackQueriesImpl{
		entities: entities,
		surveys:  surveys,
	}
}

// GetForm resolves a feedback link into the form a respondent fills in.
func (q *feedbackQueriesImpl) GetForm(ctx context.Context, responseEntityID uuid.UUID) (*FeedbackFormView, error) {
	entity, err := q.entities.FindByID(ctx, responseEntityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFeedbackLinkInvalid
		}
		return nil, err
	}
	if entity.Status == StatusCompleted {
		return nil, ErrFeedbackSubmitted
	}

	sv, err := q.surveys.FindByID(ctx, entity.SurveyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyUnavailable
		}
		return nil, err
	}
	if sv.Status != StatusActive {
		return nil, ErrSurveyUnavailable
	}

	return &FeedbackFormView{
		ResponseEntityID: entity.ID,
		SurveyID:         sv.ID,
		SurveyName:       sv.Name,
		Description:      sv.Description,
		BusinessName:     sv.BusinessName,
		DeliveryType:     entity.DeliveryType,
		Questions:        sv.Questions,
	}, nil
}
