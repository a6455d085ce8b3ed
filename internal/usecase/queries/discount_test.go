//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"
	"feedbackpro/tests/common/fakeuow"
	queriesmock "feedbackpro/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockDiscountReadStore
	dir       *fakeuow.Store
	clock     *clock.Frozen
	queries   queries.DiscountQueries
	owner     shared.Actor
	business  shared.BusinessSnapshot
}

func (s *DiscountQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockDiscountReadStore(s.mockCtrl)
	s.dir = fakeuow.New()
	s.clock = clock.NewFrozen(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.queries = queries.NewDiscountQueries(s.mockStore, s.dir.CommandReads(), s.clock)

	u, b := s.dir.AddOwner("Owner", true)
	s.owner = shared.Actor{UserID: u.ID, Role: u.Role}
	s.business = b
}

func (s *DiscountQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountQueriesSuite(t *testing.T) {
	suite.Run(t, new(DiscountQueriesTestSuite))
}

func (s *DiscountQueriesTestSuite) TestList() {
	s.Run("counts and pages at the same instant", func() {
		now := s.clock.Now()
		items := []*queries.DiscountCodeView{{ID: uuid.New(), Code: "SAVEABCD2345"}}
		s.mockStore.EXPECT().CountByBusiness(gomock.Any(), s.business.ID, discount.FilterActive, now).Return(int64(21), nil)
		s.mockStore.EXPECT().ListByBusiness(gomock.Any(), s.business.ID, discount.FilterActive, now, int32(10), int32(20)).Return(items, nil)

		got, page, err := s.queries.List(s.ctx, s.owner, queries.ListDiscountCodesRequest{
			BusinessID: s.business.ID,
			Status:     discount.FilterActive,
			Page:       queries.PageRequest{Page: 3},
		})
		s.Require().NoError(err)
		s.Equal(items, got)
		s.Equal(queries.Pagination{Total: 21, Page: 3, Limit: 10, TotalPages: 3}, page)
	})

	s.Run("empty filter means all", func() {
		s.mockStore.EXPECT().CountByBusiness(gomock.Any(), s.business.ID, discount.FilterAll, gomock.Any()).Return(int64(0), nil)
		s.mockStore.EXPECT().ListByBusiness(gomock.Any(), s.business.ID, discount.FilterAll, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, page, err := s.queries.List(s.ctx, s.owner, queries.ListDiscountCodesRequest{BusinessID: s.business.ID})
		s.Require().NoError(err)
		s.Equal(0, page.TotalPages)
	})

	s.Run("a page far past the end asks for an empty slice, not a negative offset", func() {
		wantOffset := int32((queries.MaxPage - 1) * queries.MaxListLimit)
		s.mockStore.EXPECT().CountByBusiness(gomock.Any(), s.business.ID, discount.FilterAll, gomock.Any()).Return(int64(4), nil)
		s.mockStore.EXPECT().ListByBusiness(gomock.Any(), s.business.ID, discount.FilterAll, gomock.Any(), int32(100), wantOffset).Return(nil, nil)

		got, page, err := s.queries.List(s.ctx, s.owner, queries.ListDiscountCodesRequest{
			BusinessID: s.business.ID,
			Page:       queries.PageRequest{Page: 30_000_000, Limit: 100},
		})
		s.Require().NoError(err)
		s.Empty(got)
		s.Equal(1, page.TotalPages)
		s.Equal(queries.MaxPage, page.Page)
	})

	s.Run("other owners are denied before the store", func() {
		other, _ := s.dir.AddOwner("Other", true)

		_, _, err := s.queries.List(s.ctx, shared.Actor{UserID: other.ID, Role: other.Role}, queries.ListDiscountCodesRequest{BusinessID: s.business.ID})
		s.True(errs.Is(err, shared.ErrBusinessAccessDenied))
	})

	s.Run("unknown business is denied", func() {
		_, _, err := s.queries.List(s.ctx, s.owner, queries.ListDiscountCodesRequest{BusinessID: uuid.New()})
		s.True(errs.Is(err, shared.ErrBusinessAccessDenied))
	})
}
