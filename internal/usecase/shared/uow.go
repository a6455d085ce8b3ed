package shared

import (
	"context"
	"time"

	"feedbackpro/internal/domain/business"
	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Businesses() BusinessRepository
	Surveys() SurveyRepository
	ResponseEntities() ResponseEntityRepository
	DiscountCodes() DiscountCodeRepository
	Reads() CommandReads
}

// Directory resolves users and businesses for ownership checks.
type Directory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessSnapshot, error)
	BusinessByOwner(ctx context.Context, userID uuid.UUID) (*BusinessSnapshot, error)
}

// CommandReads are the reads a command needs to check its preconditions.
// Missing rows surface as infra.KindNotFound.
type CommandReads interface {
	Directory
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	SurveyByID(ctx context.Context, id uuid.UUID) (*SurveySnapshot, error)
	ResponseEntityByID(ctx context.Context, id uuid.UUID) (*ResponseEntitySnapshot, error)
	DiscountCodeByResponseEntity(ctx context.Context, responseEntityID uuid.UUID) (*DiscountCodeSnapshot, error)
	DiscountCodeByCode(ctx context.Context, businessID uuid.UUID, code string) (*DiscountCodeSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type BusinessRepository interface {
	Create(ctx context.Context, b *business.Business) error
}

type SurveyRepository interface {
	Create(ctx context.Context, s *survey.Survey) error
	Update(ctx context.Context, snap *SurveySnapshot) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ResponseEntityRepository interface {
	Create(ctx context.Context, e *response.ResponseEntity) error
	// MarkCompleted flips PENDING to COMPLETED and reports false when the entity was not PENDING.
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SaveAnswers(ctx context.Context, responseEntityID uuid.UUID, answers []response.Answer, at time.Time) error
}

type DiscountCodeRepository interface {
	CodeExists(ctx context.Context, code string) (bool, error)
	// Insert returns the stored code, or nil when the response entity already has one.
	Insert(ctx context.Context, dc *discount.DiscountCode) (*discount.DiscountCode, error)
	// MarkRedeemed reports false when the code was already redeemed or expired at `at`.
	MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}
