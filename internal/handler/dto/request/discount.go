package request

import (
	"strings"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errInvalidID     = errs.NewValidation("must be a valid id")
	errInvalidAmount = errs.NewValidation("must be a decimal number")
)

// IssueDiscountRequest issues a code by hand. Omitted type and value fall back to the reward policy.
type IssueDiscountRequest struct {
	ResponseEntityID string     `json:"responseEntityId" binding:"required"`
	DiscountType     *string    `json:"discountType"`
	DiscountValue    *string    `json:"discountValue"`
	ExpiresAt        *time.Time `json:"expiresAt"`
}

func (r IssueDiscountRequest) ToCommand(businessID uuid.UUID, policy commands.RewardPolicy, now time.Time) (commands.IssueDiscountRequest, []FieldError) {
	var fe fieldErrors

	entityID, err := uuid.Parse(r.ResponseEntityID)
	if err != nil {
		fe.add("responseEntityId", errInvalidID)
	}

	dt := policy.DiscountType
	if r.DiscountType != nil {
		if dt, err = discount.ParseType(strings.ToUpper(strings.TrimSpace(*r.DiscountType))); err != nil {
			fe.add("discountType", err)
		}
	}

	value := policy.DiscountValue
	if r.DiscountValue != nil {
		if value, err = decimal.NewFromString(strings.TrimSpace(*r.DiscountValue)); err != nil {
			fe.add("discountValue", errInvalidAmount)
		} else if err := discount.ValidateValue(dt, value); err != nil {
			fe.add("discountValue", err)
		}
	}

	expiresAt := policy.ExpiryFrom(now)
	if r.ExpiresAt != nil {
		expiresAt = r.ExpiresAt
	}
	if len(fe) > 0 {
		return commands.IssueDiscountRequest{}, fe
	}

	return commands.IssueDiscountRequest{
		ResponseEntityID: entityID,
		BusinessID:       businessID,
		Type:             dt,
		Value:            value,
		ExpiresAt:        expiresAt,
	}, nil
}

type RedeemDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r RedeemDiscountRequest) ToCommand(businessID uuid.UUID) (commands.RedeemDiscountRequest, []FieldError) {
	if strings.TrimSpace(r.Code) == "" {
		var fe fieldErrors
		fe.add("code", commands.ErrEmptyRedeemCode)
		return commands.RedeemDiscountRequest{}, fe
	}
	return commands.RedeemDiscountRequest{BusinessID: businessID, Code: r.Code}, nil
}

type ListDiscountCodesQuery struct {
	PageQuery
	Status string `form:"status"`
}

func (q ListDiscountCodesQuery) ToQuery(businessID uuid.UUID) (queries.ListDiscountCodesRequest, []FieldError) {
	filter, err := discount.ParseStatusFilter(strings.ToLower(strings.TrimSpace(q.Status)))
	if err != nil {
		var fe fieldErrors
		fe.add("status", err)
		return queries.ListDiscountCodesRequest{}, fe
	}
	return queries.ListDiscountCodesRequest{
		BusinessID: businessID,
		Status:     filter,
		Page:       q.ToPageRequest(),
	}, nil
}
