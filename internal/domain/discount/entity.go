package discount

import (
	"time"

	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode            = errs.NewValidation("discount code cannot be empty")
	ErrInvalidDiscountValue = errs.NewValidation("discount value must be greater than zero")
	ErrPercentageTooHigh    = errs.NewValidation("percentage discount cannot exceed 100")
	ErrValuePrecision       = errs.NewValidation("discount value allows at most 2 decimal places")
	ErrValueTooLarge        = errs.NewValidation("discount value must be less than 100000000")
	ErrExpiryInPast         = errs.NewValidation("discount expiry must be in the future")

	ErrAlreadyRedeemed = errs.New("Discount code has already been redeemed")
	ErrCodeExpired     = errs.New("Discount code has expired")
)

// ValueScale and the exclusive upper bound match discount_value NUMERIC(10, 2).
const ValueScale = 2

var (
	maxPercentage = decimal.NewFromInt(100)
	valueLimit    = decimal.New(1, 8)
)

// ValidateValue checks a discount value before it is stored. Values that would be
// rounded or overflow the column are rejected rather than silently changed.
func ValidateValue(discountType Type, value decimal.Decimal) error {
	if !value.IsPositive() {
		return ErrInvalidDiscountValue
	}
	if !value.Equal(value.Truncate(ValueScale)) {
		return ErrValuePrecision
	}
	if !value.LessThan(valueLimit) {
		return ErrValueTooLarge
	}
	if discountType == TypePercentage && value.GreaterThan(maxPercentage) {
		return ErrPercentageTooHigh
	}
	return nil
}

type DiscountCode struct {
	id               uuid.UUID
	code             string
	discountType     Type
	value            decimal.Decimal
	expiresAt        *time.Time
	isRedeemed       bool
	redeemedAt       *time.Time
	businessID       uuid.UUID
	responseEntityID uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewDiscountCode(code string, discountType Type, value decimal.Decimal, expiresAt *time.Time, businessID, responseEntityID uuid.UUID, now time.Time) (*DiscountCode, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if err := ValidateValue(discountType, value); err != nil {
		return nil, err
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	return &DiscountCode{
		id:               uuid.New(),
		code:             code,
		discountType:     discountType,
		value:            value,
		expiresAt:        expiresAt,
		businessID:       businessID,
		responseEntityID: responseEntityID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Reconstruct rebuilds a persisted code without re-running creation rules.
func Reconstruct(id uuid.UUID, code string, discountType Type, value decimal.Decimal, expiresAt *time.Time, isRedeemed bool, redeemedAt *time.Time, businessID, responseEntityID uuid.UUID, createdAt, updatedAt time.Time) *DiscountCode {
	return &DiscountCode{
		id:               id,
		code:             code,
		discountType:     discountType,
		value:            value,
		expiresAt:        expiresAt,
		isRedeemed:       isRedeemed,
		redeemedAt:       redeemedAt,
		businessID:       businessID,
		responseEntityID: responseEntityID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsExpiredAt treats the expiry instant itself as expired.
func (d *DiscountCode) IsExpiredAt(now time.Time) bool {
	return d.expiresAt != nil && !now.Before(*d.expiresAt)
}

// Redeem flips the code to redeemed. Redemption is one-way.
func (d *DiscountCode) Redeem(now time.Time) error {
	if d.isRedeemed {
		return ErrAlreadyRedeemed
	}
	if d.IsExpiredAt(now) {
		return ErrCodeExpired
	}
	d.isRedeemed = true
	d.redeemedAt = &now
	d.updatedAt = now
	return nil
}

func (d *DiscountCode) ID() uuid.UUID               { return d.id }
func (d *DiscountCode) Code() string                { return d.code }
func (d *DiscountCode) Type() Type                  { return d.discountType }
func (d *DiscountCode) Value() decimal.Decimal      { return d.value }
func (d *DiscountCode) ExpiresAt() *time.Time       { return d.expiresAt }
func (d *DiscountCode) IsRedeemed() bool            { return d.isRedeemed }
func (d *DiscountCode) RedeemedAt() *time.Time      { return d.redeemedAt }
func (d *DiscountCode) BusinessID() uuid.UUID       { return d.businessID }
func (d *DiscountCode) ResponseEntityID() uuid.UUID { return d.responseEntityID }
func (d *DiscountCode) CreatedAt() time.Time        { return d.createdAt }
func (d *DiscountCode) UpdatedAt() time.Time        { return d.updatedAt }
