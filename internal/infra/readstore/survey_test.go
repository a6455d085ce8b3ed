//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSurveyReadQueries struct {
	mock.Mock
}

func (m *MockSurveyReadQueries) GetSurveyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSurveyByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetSurveyByIDRow), args.Error(1)
}

func (m *MockSurveyReadQueries) ListQuestionsBySurvey(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) ([]sqlc.Questions, error) {
	args := m.Called(ctx, db, surveyID)
	return args.Get(0).([]sqlc.Questions), args.Error(1)
}

func (m *MockSurveyReadQueries) GetSurveyResponseStats(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) (sqlc.GetSurveyResponseStatsRow, error) {
	args := m.Called(ctx, db, surveyID)
	return args.Get(0).(sqlc.GetSurveyResponseStatsRow), args.Error(1)
}

func (m *MockSurveyReadQueries) ListSurveysByBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSurveysByBusinessParams) ([]sqlc.ListSurveysByBusinessRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListSurveysByBusinessRow), args.Error(1)
}

func (m *MockSurveyReadQueries) CountSurveysByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSurveyReadQueries) ListCompletedResponseEntitiesBySurvey(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletedResponseEntitiesBySurveyParams) ([]sqlc.ResponseEntities, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ResponseEntities), args.Error(1)
}

func (m *MockSurveyReadQueries) CountCompletedResponseEntitiesBySurvey(ctx context.Context, db sqlc.DBTX, surveyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, surveyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSurveyReadQueries) ListResponsesByEntityIDs(ctx context.Context, db sqlc.DBTX, entityIds []uuid.UUID) ([]sqlc.ListResponsesByEntityIDsRow, error) {
	args := m.Called(ctx, db, entityIds)
	return args.Get(0).([]sqlc.ListResponsesByEntityIDsRow), args.Error(1)
}

func TestSurveyReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	q1, q2 := uuid.New(), uuid.New()

	mockQueries := new(MockSurveyReadQueries)
	mockQueries.On("GetSurveyByID", mock.Anything, mock.Anything, id).Return(sqlc.GetSurveyByIDRow{
		ID:           id,
		BusinessName: "Corner Cafe",
		Name:         "Visit survey",
		Status:       "ACTIVE",
	}, nil)
	mockQueries.On("ListQuestionsBySurvey", mock.Anything, mock.Anything, id).Return([]sqlc.Questions{
		{ID: q1, Text: "How was it?", Type: "RATING_SCALE_5", Position: 0, IsRequired: true},
		{ID: q2, Text: "Anything else?", Type: "TEXT", Position: 1},
	}, nil)
	mockQueries.On("GetSurveyResponseStats", mock.Anything, mock.Anything, id).Return(sqlc.GetSurveyResponseStatsRow{
		TotalEntities:     5,
		CompletedEntities: 3,
		SmsEntities:       2,
	}, nil)

	view, err := NewSurveyReadStore(mockQueries, nil).FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, view.Questions, 2)
	assert.Equal(t, q1, view.Questions[0].ID)
	assert.Equal(t, int32(1), view.Questions[1].Position)
	assert.Equal(t, int64(3), view.Stats.Completed)
	assert.Equal(t, int64(2), view.Stats.SMS)
	assert.Nil(t, view.Description)
}

func TestSurveyReadStore_ListCompletedResponses(t *testing.T) {
	surveyID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()
	submitted := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("answers grouped under their entity", func(t *testing.T) {
		mockQueries := new(MockSurveyReadQueries)
		mockQueries.On("ListCompletedResponseEntitiesBySurvey", mock.Anything, mock.Anything, sqlc.ListCompletedResponseEntitiesBySurveyParams{
			SurveyID: surveyID, Limit: 10, Offset: 0,
		}).Return([]sqlc.ResponseEntities{
			{ID: e1, Type: "QR", Status: "COMPLETED", SubmittedAt: pgconv.TimeToPgtype(submitted)},
			{ID: e2, Type: "DIRECT_SMS", Status: "COMPLETED", SubmittedAt: pgconv.TimeToPgtype(submitted)},
		}, nil)
		mockQueries.On("ListResponsesByEntityIDs", mock.Anything, mock.Anything, []uuid.UUID{e1, e2}).Return([]sqlc.ListResponsesByEntityIDsRow{
			{ResponseEntityID: e1, QuestionText: "Q1", Value: "5", QuestionPosition: 0},
			{ResponseEntityID: e2, QuestionText: "Q1", Value: "3", QuestionPosition: 0},
			{ResponseEntityID: e1, QuestionText: "Q2", Value: "Nice", QuestionPosition: 1},
		}, nil)

		views, err := NewSurveyReadStore(mockQueries, nil).ListCompletedResponses(context.Background(), surveyID, 10, 0)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, e1, views[0].ResponseEntityID)
		assert.Len(t, views[0].Answers, 2)
		assert.Len(t, views[1].Answers, 1)
		assert.Equal(t, "3", views[1].Answers[0].Value)
	})

	t.Run("empty page skips the answer query", func(t *testing.T) {
		mockQueries := new(MockSurveyReadQueries)
		mockQueries.On("ListCompletedResponseEntitiesBySurvey", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ResponseEntities{}, nil)

		views, err := NewSurveyReadStore(mockQueries, nil).ListCompletedResponses(context.Background(), surveyID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, views)
		mockQueries.AssertNotCalled(t, "ListResponsesByEntityIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}
