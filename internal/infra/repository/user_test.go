//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name           string
		mockError      error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "success"},
		{
			name:           "duplicate email",
			mockError:      &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintUsersEmail},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintUsersEmail,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() && p.Email == u.Email().Value() && p.Role == u.Role().String()
			})).Return(sqlc.Users{}, tt.mockError)

			repo := NewUserRepository(mockQueries, nil)
			err := repo.Create(context.Background(), u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				if tt.wantConstraint != "" {
					assert.True(t, infra.IsConstraint(err, tt.wantConstraint))
				}
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserLastLoginParams) bool {
				return p.ID == userID && p.LastLoginAt.Time.Equal(at)
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nil)
			err := repo.UpdateLastLogin(context.Background(), userID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
