package readstore

import (
	"context"

	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type SurveyReadQueries interface {
	GetSurveyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSurveyByIDRow, error)
	ListQuestionsBySurvey(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) ([]sqlc.Questions, error)
	GetSurveyResponseStats(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) (sqlc.GetSurveyResponseStatsRow, error)
	ListSurveysByBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSurveysByBusinessParams) ([]sqlc.ListSurveysByBusinessRow, error)
	CountSurveysByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) (int64, error)
	ListCompletedResponseEntitiesBySurvey(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletedResponseEntitiesBySurveyParams) ([]sqlc.ResponseEntities, error)
	CountCompletedResponseEntitiesBySurvey(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) (int64, error)
	ListResponsesByEntityIDs(ctx context.Context, db sqlc.DBTX, entityIds []uuid.UUID) ([]sqlc.ListResponsesByEntityIDsRow, error)
}

type SurveyReadStore struct {
	queries SurveyReadQueries
	db      sqlc.DBTX
}

func NewSurveyReadStore(queries SurveyReadQueries, db sqlc.DBTX) *SurveyReadStore {
	return &SurveyReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the survey with its ordered questions and response counts.
func (r *SurveyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SurveyView, error) {
	view, err := r.FindDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := r.queries.GetSurveyResponseStats(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load survey response stats", err)
	}
	view.Stats = queries.ResponseStats{
		Total:     stats.TotalEntities,
		Completed: stats.CompletedEntities,
		SMS:       stats.SmsEntities,
	}
	return view, nil
}

// FindDefinition skips the response counts.
func (r *SurveyReadStore) FindDefinition(ctx context.Context, id uuid.UUID) (*queries.SurveyView, error) {
	row, err := r.queries.GetSurveyByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find survey", err)
	}

	qs, err := r.queries.ListQuestionsBySurvey(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list survey questions", err)
	}

	questions := make([]queries.QuestionView, 0, len(qs))
	for _, q := range qs {
		questions = append(questions, queries.QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Position:   q.Position,
			IsRequired: q.IsRequired,
		})
	}

	return &queries.SurveyView{
		ID:           row.ID,
		BusinessID:   row.BusinessID,
		BusinessName: row.BusinessName,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		Status:       row.Status,
		Questions:    questions,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *SurveyReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int32) ([]*queries.SurveyListItem, error) {
	rows, err := r.queries.ListSurveysByBusiness(ctx, r.db, sqlc.ListSurveysByBusinessParams{
		BusinessID: businessID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list surveys", err)
	}

	items := make([]*queries.SurveyListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.SurveyListItem{
			ID:            row.ID,
			Name:          row.Name,
			Description:   pgconv.StringPtrFromPgtype(row.Description),
			Status:        row.Status,
			QuestionCount: row.QuestionCount,
			ResponseCount: row.ResponseCount,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items, nil
}

func (r *SurveyReadStore) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	n, err := r.queries.CountSurveysByBusiness(ctx, r.db, businessID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count surveys", err)
	}
	return n, nil
}

// ListCompletedResponses loads one page of completed entities, then all their answers in a single query.
func (r *SurveyReadStore) ListCompletedResponses(ctx context.Context, surveyID uuid.UUID, limit, offset int32) ([]*queries.SurveyResponseView, error) {
	entities, err := r.queries.ListCompletedResponseEntitiesBySurvey(ctx, r.db, sqlc.ListCompletedResponseEntitiesBySurveyParams{
		SurveyID: surveyID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed responses", err)
	}
	if len(entities) == 0 {
		return []*queries.SurveyResponseView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(entities))
	views := make([]*queries.SurveyResponseView, 0, len(entities))
	byID := make(map[uuid.UUID]*queries.SurveyResponseView, len(entities))
	for _, e := range entities {
		v := &queries.SurveyResponseView{
			ResponseEntityID: e.ID,
			DeliveryType:     e.Type,
			PhoneNumber:      pgconv.StringPtrFromPgtype(e.PhoneNumber),
			SubmittedAt:      pgconv.TimePtrFromPgtype(e.SubmittedAt),
			Answers:          []queries.AnswerView{},
		}
		ids = append(ids, e.ID)
		views = append(views, v)
		byID[e.ID] = v
	}

	answers, err := r.queries.ListResponsesByEntityIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list answers", err)
	}
	for _, a := range answers {
		v, ok := byID[a.ResponseEntityID]
		if !ok {
			continue
		}
		v.Answers = append(v.Answers, queries.AnswerView{
			QuestionID:       a.QuestionID,
			QuestionText:     a.QuestionText,
			QuestionType:     a.QuestionType,
			QuestionPosition: a.QuestionPosition,
			Value:            a.Value,
		})
	}

	return views, nil
}

func (r *SurveyReadStore) CountCompletedResponses(ctx context.Context, surveyID uuid.UUID) (int64, error) {
	n, err := r.queries.CountCompletedResponseEntitiesBySurvey(ctx, r.db, surveyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed responses", err)
	}
	return n, nil
}
