package discount

import "feedbackpro/internal/pkg/errs"

type Type string

const (
	TypePercentage  Type = "PERCENTAGE"
	TypeFixedAmount Type = "FIXED_AMOUNT"
)

var ErrInvalidDiscountType = errs.NewValidation("discount type must be PERCENTAGE or FIXED_AMOUNT")

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixedAmount:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

// StatusFilter selects codes by lifecycle state when listing.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterRedeemed StatusFilter = "redeemed"
	FilterExpired  StatusFilter = "expired"
)

var ErrInvalidStatusFilter = errs.NewValidation("status must be one of all, active, redeemed, expired")

func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := StatusFilter(s)
	switch f {
	case FilterAll, FilterActive, FilterRedeemed, FilterExpired:
		return f, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}
