//go:build unit || e2e

package builder

import (
	"time"

	"feedbackpro/internal/domain/discount"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountCodeBuilder struct {
	Now              time.Time
	Code             string
	Type             discount.Type
	Value            decimal.Decimal
	ExpiresAt        *time.Time
	IsRedeemed       bool
	RedeemedAt       *time.Time
	BusinessID       uuid.UUID
	ResponseEntityID uuid.UUID
}

func NewDiscountCodeBuilder() *DiscountCodeBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	expiresAt := now.Add(30 * 24 * time.Hour)
	return &DiscountCodeBuilder{
		Now:              now,
		Code:             "SAVEABCD2345",
		Type:             discount.TypePercentage,
		Value:            decimal.NewFromInt(10),
		ExpiresAt:        &expiresAt,
		BusinessID:       uuid.New(),
		ResponseEntityID: uuid.New(),
	}
}

func (b *DiscountCodeBuilder) With(mutate func(*DiscountCodeBuilder)) *DiscountCodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DiscountCodeBuilder) BuildDomain() (*discount.DiscountCode, error) {
	return discount.NewDiscountCode(b.Code, b.Type, b.Value, b.ExpiresAt, b.BusinessID, b.ResponseEntityID, b.Now)
}

func (b *DiscountCodeBuilder) BuildInfra() sqlc.DiscountCodes {
	return sqlc.DiscountCodes{
		ID:               uuid.New(),
		Code:             b.Code,
		DiscountType:     b.Type.String(),
		DiscountValue:    pgconv.DecimalToNumeric(b.Value),
		ExpiresAt:        pgconv.TimePtrToPgtype(b.ExpiresAt),
		IsRedeemed:       b.IsRedeemed,
		RedeemedAt:       pgconv.TimePtrToPgtype(b.RedeemedAt),
		BusinessID:       b.BusinessID,
		ResponseEntityID: b.ResponseEntityID,
		CreatedAt:        pgconv.TimeToPgtype(b.Now),
		UpdatedAt:        pgconv.TimeToPgtype(b.Now),
	}
}

func (b *DiscountCodeBuilder) BuildSnapshot() *shared.DiscountCodeSnapshot {
	return &shared.DiscountCodeSnapshot{
		ID:               uuid.New(),
		Code:             b.Code,
		Type:             b.Type,
		Value:            b.Value,
		ExpiresAt:        b.ExpiresAt,
		IsRedeemed:       b.IsRedeemed,
		RedeemedAt:       b.RedeemedAt,
		BusinessID:       b.BusinessID,
		ResponseEntityID: b.ResponseEntityID,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

// Fluent builder methods
func (b *DiscountCodeBuilder) WithCode(code string) *DiscountCodeBuilder {
	b.Code = code
	return b
}

func (b *DiscountCodeBuilder) WithType(t discount.Type) *DiscountCodeBuilder {
	b.Type = t
	return b
}

func (b *DiscountCodeBuilder) WithValue(v decimal.Decimal) *DiscountCodeBuilder {
	b.Value = v
	return b
}

func (b *DiscountCodeBuilder) WithExpiresAt(t time.Time) *DiscountCodeBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *DiscountCodeBuilder) WithoutExpiry() *DiscountCodeBuilder {
	b.ExpiresAt = nil
	return b
}

func (b *DiscountCodeBuilder) WithBusinessID(id uuid.UUID) *DiscountCodeBuilder {
	b.BusinessID = id
	return b
}

func (b *DiscountCodeBuilder) WithResponseEntityID(id uuid.UUID) *DiscountCodeBuilder {
	b.ResponseEntityID = id
	return b
}

func (b *DiscountCodeBuilder) AsRedeemed(at time.Time) *DiscountCodeBuilder {
	b.IsRedeemed = true
	b.RedeemedAt = &at
	return b
}
