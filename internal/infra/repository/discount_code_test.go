//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"feedbackpro/internal/infra"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountCodeWriteQueries struct {
	mock.Mock
}

func (m *MockDiscountCodeWriteQueries) DiscountCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error) {
	args := m.Called(ctx, db, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockDiscountCodeWriteQueries) InsertDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDiscountCodeParams) (sqlc.DiscountCodes, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.DiscountCodes), args.Error(1)
}

func (m *MockDiscountCodeWriteQueries) RedeemDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemDiscountCodeParams) (sqlc.DiscountCodes, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.DiscountCodes), args.Error(1)
}

func TestDiscountCodeRepository_Insert(t *testing.T) {
	b := builder.NewDiscountCodeBuilder()
	dc, err := b.BuildDomain()
	require.NoError(t, err)

	stored := b.BuildInfra()
	stored.ID = dc.ID()
	// NUMERIC(10, 2) hands back two decimal places
	stored.DiscountValue = pgconv.DecimalToNumeric(decimal.RequireFromString("10.00"))

	tests := []struct {
		name        string
		row         sqlc.DiscountCodes
		mockError   error
		wantSaved   bool
		wantCodeDup bool
		wantError   bool
	}{
		{
			name:      "inserted",
			row:       stored,
			wantSaved: true,
		},
		{
			name:      "response entity already has a code",
			mockError: pgx.ErrNoRows,
		},
		{
			name:        "code collision",
			mockError:   &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintDiscountCode},
			wantCodeDup: true,
			wantError:   true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
		{
			name:      "unreadable stored type",
			row:       func() sqlc.DiscountCodes { r := stored; r.DiscountType = "BOGO"; return r }(),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDiscountCodeWriteQueries)
			mockQueries.On("InsertDiscountCode", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.InsertDiscountCodeParams) bool {
				return p.Code == dc.Code() && p.ResponseEntityID == dc.ResponseEntityID() && p.ExpiresAt.Valid
			})).Return(tt.row, tt.mockError)

			repo := NewDiscountCodeRepository(mockQueries, nil)
			saved, err := repo.Insert(context.Background(), dc)

			if tt.wantError {
				require.Error(t, err)
				assert.Nil(t, saved)
				assert.Equal(t, tt.wantCodeDup, infra.IsConstraint(err, infra.ConstraintDiscountCode))
				mockQueries.AssertExpectations(t)
				return
			}
			require.NoError(t, err)
			if !tt.wantSaved {
				assert.Nil(t, saved)
				mockQueries.AssertExpectations(t)
				return
			}
			require.NotNil(t, saved)
			assert.Equal(t, dc.ID(), saved.ID())
			assert.Equal(t, dc.Code(), saved.Code())
			assert.Equal(t, "10.00", saved.Value().StringFixed(2))
			assert.Equal(t, int32(-2), saved.Value().Exponent())
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestDiscountCodeRepository_MarkRedeemed(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantOK    bool
		wantError bool
	}{
		{name: "redeemed", wantOK: true},
		{name: "already redeemed or expired", mockError: pgx.ErrNoRows},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDiscountCodeWriteQueries)
			mockQueries.On("RedeemDiscountCode", mock.Anything, mock.Anything, sqlc.RedeemDiscountCodeParams{
				Now: pgtypeTime(at),
				ID:  id,
			}).Return(sqlc.DiscountCodes{}, tt.mockError)

			repo := NewDiscountCodeRepository(mockQueries, nil)
			ok, err := repo.MarkRedeemed(context.Background(), id, at)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
