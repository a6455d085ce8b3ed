package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	BusinessID   *uuid.UUID `json:"businessId,omitempty"`
	BusinessName *string    `json:"businessName,omitempty"`
	IsActive     bool       `json:"isActive"`
}

type BusinessView struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name"`
}

type QuestionView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Type       string    `json:"type"`
	Position   int32     `json:"order"`
	IsRequired bool      `json:"isRequired"`
}

type SurveyListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Status        string    `json:"status"`
	QuestionCount int64     `json:"questionCount"`
	ResponseCount int64     `json:"responseCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ResponseStats summarises the response entities minted for a survey.
type ResponseStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	SMS       int64 `json:"sms"`
}

type SurveyView struct {
	ID           uuid.UUID      `json:"id"`
	BusinessID   uuid.UUID      `json:"businessId"`
	BusinessName string         `json:"businessName"`
	OwnerID      uuid.UUID      `json:"-"`
	Name         string         `json:"name"`
	Description  *string        `json:"description,omitempty"`
	Status       string         `json:"status"`
	Questions    []QuestionView `json:"questions"`
	Stats        ResponseStats  `json:"responseStats"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type AnswerView struct {
	QuestionID       uuid.UUID `json:"questionId"`
	QuestionText     string    `json:"questionText"`
	QuestionType     string    `json:"questionType"`
	QuestionPosition int32     `json:"questionOrder"`
	Value            string    `json:"answer"`
}

type SurveyResponseView struct {
	ResponseEntityID uuid.UUID    `json:"responseEntityId"`
	DeliveryType     string       `json:"type"`
	PhoneNumber      *string      `json:"phoneNumber,omitempty"`
	SubmittedAt      *time.Time   `json:"submittedAt,omitempty"`
	Answers          []AnswerView `json:"answers"`
}

type PublicLinkView struct {
	SurveyID uuid.UUID `json:"surveyId"`
	URL      string    `json:"url"`
}

// PublicSurveyView is what a respondent sees before a feedback link is minted.
type PublicSurveyView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	BusinessName string    `json:"businessName"`
}

type ResponseEntityView struct {
	ID           uuid.UUID  `json:"id"`
	SurveyID     uuid.UUID  `json:"surveyId"`
	BusinessID   uuid.UUID  `json:"businessId"`
	DeliveryType string     `json:"type"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type FeedbackFormView struct {
	ResponseEntityID uuid.UUID      `json:"responseEntityId"`
	SurveyID         uuid.UUID      `json:"surveyId"`
	SurveyName       string         `json:"surveyName"`
	Description      *string        `json:"description,omitempty"`
	BusinessName     string         `json:"businessName"`
	DeliveryType     string         `json:"type"`
	Questions        []QuestionView `json:"questions"`
}

type DiscountResponseSummary struct {
	ID           uuid.UUID  `json:"id"`
	DeliveryType string     `json:"type"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
}

type DiscountCodeView struct {
	ID             uuid.UUID               `json:"id"`
	Code           string                  `json:"code"`
	DiscountType   string                  `json:"discountType"`
	DiscountValue  decimal.Decimal         `json:"discountValue"`
	ExpiresAt      *time.Time              `json:"expiresAt,omitempty"`
	IsRedeemed     bool                    `json:"isRedeemed"`
	RedeemedAt     *time.Time              `json:"redeemedAt,omitempty"`
	BusinessID     uuid.UUID               `json:"businessId"`
	ResponseEntity DiscountResponseSummary `json:"responseEntity"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}
