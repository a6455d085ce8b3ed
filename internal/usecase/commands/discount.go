package commands

import (
	"context"
	"log/slog"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrResponseNotReady  = errs.New("Response must be completed before a discount code can be issued")
	ErrCodeAlreadyIssued = errs.New("A discount code has already been issued for this response")
	ErrBusinessNotFound  = errs.New("Business not found")
	ErrCodeNotFound      = errs.New("Invalid discount code")
	ErrEmptyRedeemCode   = errs.NewValidation("discount code is required")
)

const (
	RedeemSuccessMessage = "Discount code redeemed successfully"

	// maxIssueAttempts bounds whole-transaction retries after a code collision on insert.
	maxIssueAttempts = 3
)

type IssueDiscountRequest struct {
	ResponseEntityID uuid.UUID
	BusinessID       uuid.UUID
	Type             discount.Type
	Value            decimal.Decimal
	ExpiresAt        *time.Time
}

type RedeemDiscountRequest struct {
	BusinessID uuid.UUID
	Code       string
}

type RedeemDiscountResult struct {
	DiscountCode *shared.DiscountCodeSnapshot
	Message      string
}

// DiscountCommands issues and redeems discount codes.
//
// Issue and IssueForOwner return the already issued code together with ErrCodeAlreadyIssued.
// Redeem returns the current record together with ErrAlreadyRedeemed or ErrCodeExpired.
type DiscountCommands interface {
	Issue(ctx context.Context, req IssueDiscountRequest) (*shared.DiscountCodeSnapshot, error)
	IssueForOwner(ctx context.Context, actor shared.Actor, req IssueDiscountRequest) (*shared.DiscountCodeSnapshot, error)
	Redeem(ctx context.Context, actor shared.Actor, req RedeemDiscountRequest) (*RedeemDiscountResult, error)
}

type DiscountOption func(*discountCommandsImpl)

// WithCodeSource replaces the random code source.
func WithCodeSource(src discount.CodeSource) DiscountOption {
	return func(d *discountCommandsImpl) { d.source = src }
}

type discountCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy RewardPolicy
	source discount.CodeSource
}

func NewDiscountCommands(uow shared.UnitOfWork, clk clock.Clock, policy RewardPolicy, opts ...DiscountOption) DiscountCommands {
	d := &discountCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *discountCommandsImpl) IssueForOwner(ctx context.Context, actor shared.Actor, req IssueDiscountRequest) (*shared.DiscountCodeSnapshot, error) {
	if _, err := shared.AuthorizeBusiness(ctx, d.uow.CommandReads(), actor, req.BusinessID); err != nil {
		return nil, err
	}
	return d.Issue(ctx, req)
}

func (d *discountCommandsImpl) Issue(ctx context.Context, req IssueDiscountRequest) (*shared.DiscountCodeSnapshot, error) {
	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		snap, err := d.issueOnce(ctx, req)
		if err == nil || !infra.IsConstraint(err, infra.ConstraintDiscountCode) {
			return snap, err
		}
		slog.Warn("discount code collided on insert, retrying issuance",
			"response_entity_id", req.ResponseEntityID,
			"attempt", attempt)
	}
	return nil, discount.ErrCodeGenerationExhausted
}

func (d *discountCommandsImpl) issueOnce(ctx context.Context, req IssueDiscountRequest) (*shared.DiscountCodeSnapshot, error) {
	var out *shared.DiscountCodeSnapshot

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		entity, err := reads.ResponseEntityByID(ctx, req.ResponseEntityID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResponseNotReady
			}
			return err
		}
		if !entity.IsCompleted() {
			return ErrResponseNotReady
		}

		existing, err := reads.DiscountCodeByResponseEntity(ctx, entity.ID)
		switch {
		case err == nil:
			out = existing
			return ErrCodeAlreadyIssued
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		biz, err := reads.BusinessByID(ctx, req.BusinessID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBusinessNotFound
			}
			return err
		}
		if entity.BusinessID != biz.ID {
			return ErrBusinessNotFound
		}

		code, _, err := d.generator(tx).Generate(ctx)
		if err != nil {
			return err
		}

		dc, err := discount.NewDiscountCode(code, req.Type, req.Value, req.ExpiresAt, biz.ID, entity.ID, d.clock.Now())
		if err != nil {
			return err
		}

		saved, err := tx.DiscountCodes().Insert(ctx, dc)
		if err != nil {
			return err
		}
		if saved == nil {
			// a concurrent issuance won the response entity
			existing, err := reads.DiscountCodeByResponseEntity(ctx, entity.ID)
			if err != nil {
				return err
			}
			out = existing
			return ErrCodeAlreadyIssued
		}

		out = shared.SnapshotFromDiscountCode(saved)
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrCodeAlreadyIssued) {
			return out, err
		}
		return nil, err
	}
	return out, nil
}

func (d *discountCommandsImpl) generator(tx shared.Tx) *discount.UniqueCodeGenerator {
	opts := []discount.GeneratorOption{
		discount.WithLength(d.policy.CodeLength),
		discount.WithPrefix(d.policy.CodePrefix),
	}
	if d.source != nil {
		opts = append(opts, discount.WithSource(d.source))
	}
	return discount.NewUniqueCodeGenerator(tx.DiscountCodes().CodeExists, opts...)
}

func (d *discountCommandsImpl) Redeem(ctx context.Context, actor shared.Actor, req RedeemDiscountRequest) (*RedeemDiscountResult, error) {
	code := discount.NormalizeCode(req.Code)
	if code == "" {
		return nil, ErrEmptyRedeemCode
	}

	if _, err := shared.AuthorizeBusiness(ctx, d.uow.CommandReads(), actor, req.BusinessID); err != nil {
		return nil, err
	}

	var out *shared.DiscountCodeSnapshot
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.DiscountCodeByCode(ctx, req.BusinessID, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCodeNotFound
			}
			return err
		}

		now := d.clock.Now()
		dc := snap.ToDomain()
		if err := dc.Redeem(now); err != nil {
			out = snap
			return err
		}

		ok, err := tx.DiscountCodes().MarkRedeemed(ctx, snap.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			// lost a race: classify against what is stored now
			fresh, err := reads.DiscountCodeByCode(ctx, req.BusinessID, code)
			if err != nil {
				return err
			}
			out = fresh
			if rerr := fresh.ToDomain().Redeem(now); rerr != nil {
				return rerr
			}
			return discount.ErrAlreadyRedeemed
		}

		out = shared.SnapshotFromDiscountCode(dc)
		return nil
	})
	if err != nil {
		if errs.Is(err, discount.ErrAlreadyRedeemed) || errs.Is(err, discount.ErrCodeExpired) {
			return &RedeemDiscountResult{DiscountCode: out}, err
		}
		return nil, err
	}

	return &RedeemDiscountResult{DiscountCode: out, Message: RedeemSuccessMessage}, nil
}
