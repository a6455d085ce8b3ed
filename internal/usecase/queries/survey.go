package queries

import (
	"context"

	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSurveyNotFound    = errs.New("Survey not found")
	ErrSurveyUnavailable = errs.New("Survey not found or is inactive.")
)

type SurveyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SurveyView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int32) ([]*SurveyListItem, error)
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
	ListCompletedResponses(ctx context.Context, surveyID uuid.UUID, limit, offset int32) ([]*SurveyResponseView, error)
	CountCompletedResponses(ctx context.Context, surveyID uuid.UUID) (int64, error)
}

type SurveyQueries interface {
	List(ctx context.Context, actor shared.Actor, page PageRequest) ([]*SurveyListItem, Pagination, error)
	Get(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) (*SurveyView, error)
	ListResponses(ctx context.Context, actor shared.Actor, surveyID uuid.UUID, page PageRequest) ([]*SurveyResponseView, Pagination, error)
	PublicLink(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) (*PublicLinkView, error)
	GetPublic(ctx context.Context, surveyID uuid.UUID) (*PublicSurveyView, error)
}

type surveyQueriesImpl struct {
	store SurveyReadStore
	dir   shared.Directory
	links shared.Links
}

func NewSurveyQueries(store SurveyReadStore, dir shared.Directory, links shared.Links) SurveyQueries {
	return &surveyQueriesImpl{
		store: store,
		dir:   dir,
		links: links,
	}
}

func (q *surveyQueriesImpl) List(ctx context.Context, actor shared.Actor, page PageRequest) ([]*SurveyListItem, Pagination, error) {
	page = page.Normalize()

	biz, err := shared.OwnedBusiness(ctx, q.dir, actor)
	if err != nil {
		if errs.Is(err, shared.ErrBusinessAccessDenied) {
			// owners without a business simply have no surveys yet
			return []*SurveyListItem{}, NewPagination(page, 0), nil
		}
		return nil, Pagination{}, err
	}

	total, err := q.store.CountByBusiness(ctx, biz.ID)
	if err != nil {
		return nil, Pagination{}, err
	}
	items, err := q.store.ListByBusiness(ctx, biz.ID, page.Limit32(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(page, total), nil
}

func (q *surveyQueriesImpl) Get(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) (*SurveyView, error) {
	if _, err := shared.RequireActive(ctx, q.dir, actor); err != nil {
		return nil, err
	}
	return q.owned(ctx, actor, surveyID)
}

func (q *surveyQueriesImpl) ListResponses(ctx context.Context, actor shared.Actor, surveyID uuid.UUID, page PageRequest) ([]*SurveyResponseView, Pagination, error) {
	page = page.Normalize()

	if _, err := shared.RequireActive(ctx, q.dir, actor); err != nil {
		return nil, Pagination{}, err
	}
	if _, err := q.owned(ctx, actor, surveyID); err != nil {
		return nil, Pagination{}, err
	}

	total, err := q.store.CountCompletedResponses(ctx, surveyID)
	if err != nil {
		return nil, Pagination{}, err
	}
	items, err := q.store.ListCompletedResponses(ctx, surveyID, page.Limit32(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(page, total), nil
}

func (q *surveyQueriesImpl) PublicLink(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) (*PublicLinkView, error) {
	sv, err := q.Get(ctx, actor, surveyID)
	if err != nil {
		return nil, err
	}
	return &PublicLinkView{
		SurveyID: sv.ID,
		URL:      q.links.SurveyURL(sv.ID),
	}, nil
}

func (q *surveyQueriesImpl) GetPublic(ctx context.Context, surveyID uuid.UUID) (*PublicSurveyView, error) {
	sv, err := q.store.FindByID(ctx, surveyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyUnavailable
		}
		return nil, err
	}
	if sv.Status != StatusActive {
		return nil, ErrSurveyUnavailable
	}

	return &PublicSurveyView{
		ID:           sv.ID,
		Name:         sv.Name,
		Description:  sv.Description,
		BusinessName: sv.BusinessName,
	}, nil
}

func (q *surveyQueriesImpl) owned(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) (*SurveyView, error) {
	sv, err := q.store.FindByID(ctx, surveyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	if sv.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrSurveyNotFound
	}
	return sv, nil
}
