package response

import (
	"time"

	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type DiscountCodeResponse struct {
	ID               uuid.UUID       `json:"id"`
	Code             string          `json:"code"`
	Type             string          `json:"discountType"`
	Value            decimal.Decimal `json:"discountValue"`
	ExpiresAt        *time.Time      `json:"expiresAt,omitempty"`
	IsRedeemed       bool            `json:"isRedeemed"`
	RedeemedAt       *time.Time      `json:"redeemedAt,omitempty"`
	BusinessID       uuid.UUID       `json:"businessId"`
	ResponseEntityID uuid.UUID       `json:"responseEntityId"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func FromDiscountCode(s *shared.DiscountCodeSnapshot) (*DiscountCodeResponse, error) {
	if s == nil {
		return nil, nil
	}
	var out DiscountCodeResponse
	if err := copier.Copy(&out, s); err != nil {
		return nil, err
	}
	return &out, nil
}

type RedeemDiscountResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	DiscountCode *DiscountCodeResponse `json:"discountCode"`
}

type DiscountCodeListResponse struct {
	DiscountCodes []*queries.DiscountCodeView `json:"discountCodes"`
	Pagination    queries.Pagination          `json:"pagination"`
}
