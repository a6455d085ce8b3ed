package commands

import (
	"strings"
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RewardPolicy decides which completed responses earn a discount code and what the code looks like.
type RewardPolicy struct {
	QualifyingTypes map[response.DeliveryType]struct{}
	DiscountType    discount.Type
	DiscountValue   decimal.Decimal
	Validity        time.Duration
	CodePrefix      string
	CodeLength      int
}

func NewRewardPolicy(cfg config.Config) (RewardPolicy, error) {
	rc := cfg.Reward

	types := make(map[response.DeliveryType]struct{}, len(rc.QualifyingTypes))
	for _, raw := range rc.QualifyingTypes {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		t, err := response.ParseDeliveryType(raw)
		if err != nil {
			return RewardPolicy{}, errs.Wrapf(err, "REWARD_QUALIFYING_TYPES: %q", raw)
		}
		types[t] = struct{}{}
	}

	dt, err := discount.ParseType(rc.DiscountType)
	if err != nil {
		return RewardPolicy{}, errs.Wrap(err, "REWARD_DISCOUNT_TYPE")
	}

	value, err := decimal.NewFromString(rc.DiscountValue)
	if err != nil {
		return RewardPolicy{}, errs.Wrap(err, "REWARD_DISCOUNT_VALUE")
	}
	if err := discount.ValidateValue(dt, value); err != nil {
		return RewardPolicy{}, errs.Wrap(err, "REWARD_DISCOUNT_VALUE")
	}

	length := rc.CodeLength
	if length <= 0 {
		length = discount.DefaultCodeLength
	}
	if length > discount.MaxCodeLength {
		return RewardPolicy{}, errs.Newf("REWARD_CODE_LENGTH: %d exceeds %d", length, discount.MaxCodeLength)
	}

	return RewardPolicy{
		QualifyingTypes: types,
		DiscountType:    dt,
		DiscountValue:   value,
		Validity:        rc.Validity,
		CodePrefix:      strings.ToUpper(strings.TrimSpace(rc.CodePrefix)),
		CodeLength:      length,
	}, nil
}

func (p RewardPolicy) Qualifies(t response.DeliveryType) bool {
	_, ok := p.QualifyingTypes[t]
	return ok
}

// ExpiryFrom returns nil when codes never expire.
func (p RewardPolicy) ExpiryFrom(now time.Time) *time.Time {
	if p.Validity <= 0 {
		return nil
	}
	t := now.Add(p.Validity)
	return &t
}
