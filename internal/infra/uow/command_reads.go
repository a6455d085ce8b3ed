package uow

import (
	"context"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/infra/readstore"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads adapts the readstores to write-side snapshots, bound to one DBTX.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore     *readstore.UserReadStore
	businessStore *readstore.BusinessReadStore
	surveyStore   *readstore.SurveyReadStore
	entityStore   *readstore.ResponseEntityReadStore
	discountStore *readstore.DiscountReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) businesses() *readstore.BusinessReadStore {
	if r.businessStore == nil {
		r.businessStore = readstore.NewBusinessReadStore(r.q, r.dbtx)
	}
	return r.businessStore
}

func (r *commandReads) surveys() *readstore.SurveyReadStore {
	if r.surveyStore == nil {
		r.surveyStore = readstore.NewSurveyReadStore(r.q, r.dbtx)
	}
	return r.surveyStore
}

func (r *commandReads) entities() *readstore.ResponseEntityReadStore {
	if r.entityStore == nil {
		r.entityStore = readstore.NewResponseEntityReadStore(r.q, r.dbtx)
	}
	return r.entityStore
}

func (r *commandReads) discounts() *readstore.DiscountReadStore {
	if r.discountStore == nil {
		r.discountStore = readstore.NewDiscountReadStore(r.q, r.dbtx)
	}
	return r.discountStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := toUserSnapshot(u)
	return &snap, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	u, hash, err := r.users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserCredentials{
		UserSnapshot: toUserSnapshot(u),
		PasswordHash: hash,
	}, nil
}

func (r *commandReads) BusinessByID(ctx context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	b, err := r.businesses().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBusinessSnapshot(b), nil
}

func (r *commandReads) BusinessByOwner(ctx context.Context, userID uuid.UUID) (*shared.BusinessSnapshot, error) {
	b, err := r.businesses().FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBusinessSnapshot(b), nil
}

func (r *commandReads) SurveyByID(ctx context.Context, id uuid.UUID) (*shared.SurveySnapshot, error) {
	sv, err := r.surveys().FindDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	questions := make([]shared.QuestionSnapshot, 0, len(sv.Questions))
	for _, q := range sv.Questions {
		questions = append(questions, shared.QuestionSnapshot{
			ID:         q.ID,
			Text:       q.Text,
			Type:       survey.QuestionType(q.Type),
			Position:   int(q.Position),
			IsRequired: q.IsRequired,
		})
	}

	return &shared.SurveySnapshot{
		ID:           sv.ID,
		BusinessID:   sv.BusinessID,
		BusinessName: sv.BusinessName,
		OwnerID:      sv.OwnerID,
		Name:         sv.Name,
		Description:  sv.Description,
		Status:       survey.Status(sv.Status),
		Questions:    questions,
		UpdatedAt:    sv.UpdatedAt,
	}, nil
}

func (r *commandReads) ResponseEntityByID(ctx context.Context, id uuid.UUID) (*shared.ResponseEntitySnapshot, error) {
	e, err := r.entities().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ResponseEntitySnapshot{
		ID:           e.ID,
		SurveyID:     e.SurveyID,
		BusinessID:   e.BusinessID,
		DeliveryType: response.DeliveryType(e.DeliveryType),
		PhoneNumber:  e.PhoneNumber,
		Status:       response.Status(e.Status),
		SubmittedAt:  e.SubmittedAt,
		CreatedAt:    e.CreatedAt,
	}, nil
}

func (r *commandReads) DiscountCodeByResponseEntity(ctx context.Context, responseEntityID uuid.UUID) (*shared.DiscountCodeSnapshot, error) {
	v, err := r.discounts().FindByResponseEntity(ctx, responseEntityID)
	if err != nil {
		return nil, err
	}
	return toDiscountCodeSnapshot(v), nil
}

func (r *commandReads) DiscountCodeByCode(ctx context.Context, businessID uuid.UUID, code string) (*shared.DiscountCodeSnapshot, error) {
	v, err := r.discounts().FindByCode(ctx, businessID, code)
	if err != nil {
		return nil, err
	}
	return toDiscountCodeSnapshot(v), nil
}

func toUserSnapshot(u *queries.AuthorizedUserView) shared.UserSnapshot {
	return shared.UserSnapshot{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     user.Role(u.Role),
		IsActive: u.IsActive,
	}
}

func toBusinessSnapshot(b *queries.BusinessView) *shared.BusinessSnapshot {
	return &shared.BusinessSnapshot{
		ID:      b.ID,
		OwnerID: b.OwnerID,
		Name:    b.Name,
	}
}

func toDiscountCodeSnapshot(v *queries.DiscountCodeView) *shared.DiscountCodeSnapshot {
	return &shared.DiscountCodeSnapshot{
		ID:               v.ID,
		Code:             v.Code,
		Type:             discount.Type(v.DiscountType),
		Value:            v.DiscountValue,
		ExpiresAt:        v.ExpiresAt,
		IsRedeemed:       v.IsRedeemed,
		RedeemedAt:       v.RedeemedAt,
		BusinessID:       v.BusinessID,
		ResponseEntityID: v.ResponseEntity.ID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}
