//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResponseEntityWriteQueries struct {
	mock.Mock
}

func (m *MockResponseEntityWriteQueries) CreateResponseEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResponseEntityParams) (sqlc.ResponseEntities, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.ResponseEntities), args.Error(1)
}

func (m *MockResponseEntityWriteQueries) CompleteResponseEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteResponseEntityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseEntityWriteQueries) CreateResponses(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateResponsesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func pgtypeTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}

func TestResponseEntityRepository_MarkCompleted(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantOK    bool
		wantError bool
	}{
		{name: "pending entity completed", rows: 1, wantOK: true},
		{name: "entity no longer pending", rows: 0},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockResponseEntityWriteQueries)
			mockQueries.On("CompleteResponseEntity", mock.Anything, mock.Anything, sqlc.CompleteResponseEntityParams{
				ID:          id,
				SubmittedAt: pgtypeTime(at),
			}).Return(tt.rows, tt.mockError)

			repo := NewResponseEntityRepository(mockQueries, nil)
			ok, err := repo.MarkCompleted(context.Background(), id, at)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponseEntityRepository_SaveAnswers(t *testing.T) {
	entityID := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	a1, err := response.NewAnswer(uuid.New(), "Great service")
	require.NoError(t, err)
	a2, err := response.NewAnswer(uuid.New(), "5")
	require.NoError(t, err)
	answers := []response.Answer{a1, a2}

	matchBatch := mock.MatchedBy(func(p []sqlc.CreateResponsesParams) bool {
		if len(p) != 2 {
			return false
		}
		return p[0].ResponseEntityID == entityID && p[0].QuestionID == a1.QuestionID() &&
			p[1].Value == "5" && p[1].CreatedAt.Time.Equal(at)
	})

	t.Run("all answers copied", func(t *testing.T) {
		mockQueries := new(MockResponseEntityWriteQueries)
		mockQueries.On("CreateResponses", mock.Anything, mock.Anything, matchBatch).Return(int64(2), nil)

		repo := NewResponseEntityRepository(mockQueries, nil)
		require.NoError(t, repo.SaveAnswers(context.Background(), entityID, answers, at))
		mockQueries.AssertExpectations(t)
	})

	t.Run("short copy is a failure", func(t *testing.T) {
		mockQueries := new(MockResponseEntityWriteQueries)
		mockQueries.On("CreateResponses", mock.Anything, mock.Anything, matchBatch).Return(int64(1), nil)

		repo := NewResponseEntityRepository(mockQueries, nil)
		err := repo.SaveAnswers(context.Background(), entityID, answers, at)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
