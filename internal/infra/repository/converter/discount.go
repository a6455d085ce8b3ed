package converter

import (
	"feedbackpro/internal/domain/discount"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/pgconv"
)

func DiscountCodeToInsertParams(d *discount.DiscountCode) sqlc.InsertDiscountCodeParams {
	return sqlc.InsertDiscountCodeParams{
		ID:               d.ID(),
		Code:             d.Code(),
		DiscountType:     d.Type().String(),
		DiscountValue:    pgconv.DecimalToNumeric(d.Value()),
		ExpiresAt:        pgconv.TimePtrToPgtype(d.ExpiresAt()),
		BusinessID:       d.BusinessID(),
		ResponseEntityID: d.ResponseEntityID(),
		CreatedAt:        pgconv.TimeToPgtype(d.CreatedAt()),
	}
}

// DiscountCodeFromRow rebuilds the entity from what the database actually stored.
func DiscountCodeFromRow(row sqlc.DiscountCodes) (*discount.DiscountCode, error) {
	discountType, err := discount.ParseType(row.DiscountType)
	if err != nil {
		return nil, errs.Wrapf(err, "discount code %s", row.ID)
	}
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "discount code %s", row.ID)
	}

	return discount.Reconstruct(
		row.ID,
		row.Code,
		discountType,
		value,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		row.IsRedeemed,
		pgconv.TimePtrFromPgtype(row.RedeemedAt),
		row.BusinessID,
		row.ResponseEntityID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
