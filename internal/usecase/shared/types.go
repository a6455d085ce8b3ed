package shared

import (
	"time"

	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of read-side view types.

type UserSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     user.Role
	IsActive bool
}

type UserCredentials struct {
	UserSnapshot
	PasswordHash string
}

type BusinessSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type QuestionSnapshot struct {
	ID         uuid.UUID
	Text       string
	Type       survey.QuestionType
	Position   int
	IsRequired bool
}

type SurveySnapshot struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string
	OwnerID      uuid.UUID
	Name         string
	Description  *string
	Status       survey.Status
	Questions    []QuestionSnapshot
	UpdatedAt    time.Time
}

func (s *SurveySnapshot) IsActive() bool {
	return s.Status == survey.StatusActive
}

// HasQuestion reports whether id is one of the survey's questions.
func (s *SurveySnapshot) HasQuestion(id uuid.UUID) bool {
	for _, q := range s.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

type ResponseEntitySnapshot struct {
	ID           uuid.UUID
	SurveyID     uuid.UUID
	BusinessID   uuid.UUID
	DeliveryType response.DeliveryType
	PhoneNumber  *string
	Status       response.Status
	SubmittedAt  *time.Time
	CreatedAt    time.Time
}

func (e *ResponseEntitySnapshot) IsCompleted() bool {
	return e.Status == response.StatusCompleted
}

type DiscountCodeSnapshot struct {
	ID               uuid.UUID
	Code             string
	Type             discount.Type
	Value            decimal.Decimal
	ExpiresAt        *time.Time
	IsRedeemed       bool
	RedeemedAt       *time.Time
	BusinessID       uuid.UUID
	ResponseEntityID uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func SnapshotFromDiscountCode(dc *discount.DiscountCode) *DiscountCodeSnapshot {
	return &DiscountCodeSnapshot{
		ID:               dc.ID(),
		Code:             dc.Code(),
		Type:             dc.Type(),
		Value:            dc.Value(),
		ExpiresAt:        dc.ExpiresAt(),
		IsRedeemed:       dc.IsRedeemed(),
		RedeemedAt:       dc.RedeemedAt(),
		BusinessID:       dc.BusinessID(),
		ResponseEntityID: dc.ResponseEntityID(),
		CreatedAt:        dc.CreatedAt(),
		UpdatedAt:        dc.UpdatedAt(),
	}
}

func (s *DiscountCodeSnapshot) ToDomain() *discount.DiscountCode {
	return discount.Reconstruct(s.ID, s.Code, s.Type, s.Value, s.ExpiresAt, s.IsRedeemed, s.RedeemedAt,
		s.BusinessID, s.ResponseEntityID, s.CreatedAt, s.UpdatedAt)
}
