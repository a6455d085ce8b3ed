package queries

import (
	"context"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListDiscountCodesRequest struct {
	BusinessID uuid.UUID
	Status     discount.StatusFilter
	Page       PageRequest
}

type DiscountReadStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, filter discount.StatusFilter, now time.Time, limit, offset int32) ([]*DiscountCodeView, error)
	CountByBusiness(ctx context.Context, businessID uuid.UUID, filter discount.StatusFilter, now time.Time) (int64, error)
}

type DiscountQueries interface {
	List(ctx context.Context, actor shared.Actor, req ListDiscountCodesRequest) ([]*DiscountCodeView, Pagination, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
	dir   shared.Directory
	clock clock.Clock
}

func NewDiscountQueries(store DiscountReadStore, dir shared.Directory, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{
		store: store,
		dir:   dir,
		clock: clk,
	}
}

// List returns a business's codes newest first. Count and page share one evaluation instant.
func (q *discountQueriesImpl) List(ctx context.Context, actor shared.Actor, req ListDiscountCodesRequest) ([]*DiscountCodeView, Pagination, error) {
	page := req.Page.Normalize()
	filter := req.Status
	if filter == "" {
		filter = discount.FilterAll
	}

	if _, err := shared.AuthorizeBusiness(ctx, q.dir, actor, req.BusinessID); err != nil {
		return nil, Pagination{}, err
	}

	now := q.clock.Now()
	total, err := q.store.CountByBusiness(ctx, req.BusinessID, filter, now)
	if err != nil {
		return nil, Pagination{}, err
	}
	items, err := q.store.ListByBusiness(ctx, req.BusinessID, filter, now, page.Limit32(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(page, total), nil
}
