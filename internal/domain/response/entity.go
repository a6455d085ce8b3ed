package response

import (
	"time"

	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPhoneRequired    = errs.NewValidation("phone number is required for SMS delivery")
	ErrAlreadyCompleted = errs.New("response entity already completed")
)

// ResponseEntity is one single-use feedback link. It moves PENDING -> COMPLETED exactly once.
type ResponseEntity struct {
	id           uuid.UUID
	surveyID     uuid.UUID
	deliveryType DeliveryType
	phoneNumber  *PhoneNumber
	status       Status
	submittedAt  *time.Time
	createdAt    time.Time
}

func NewResponseEntity(surveyID uuid.UUID, deliveryType DeliveryType, phone *PhoneNumber, now time.Time) (*ResponseEntity, error) {
	if !deliveryType.IsValid() {
		return nil, ErrInvalidDeliveryType
	}
	if deliveryType.RequiresPhone() && phone == nil {
		return nil, ErrPhoneRequired
	}

	return &ResponseEntity{
		id:           uuid.New(),
		surveyID:     surveyID,
		deliveryType: deliveryType,
		phoneNumber:  phone,
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

func ReconstructResponseEntity(id, surveyID uuid.UUID, deliveryType DeliveryType, phone *PhoneNumber, status Status, submittedAt *time.Time, createdAt time.Time) *ResponseEntity {
	return &ResponseEntity{
		id:           id,
		surveyID:     surveyID,
		deliveryType: deliveryType,
		phoneNumber:  phone,
		status:       status,
		submittedAt:  submittedAt,
		createdAt:    createdAt,
	}
}

func (e *ResponseEntity) Complete(now time.Time) error {
	if e.status != StatusPending {
		return ErrAlreadyCompleted
	}
	e.status = StatusCompleted
	e.submittedAt = &now
	return nil
}

func (e *ResponseEntity) IsPending() bool { return e.status == StatusPending }

func (e *ResponseEntity) ID() uuid.UUID              { return e.id }
func (e *ResponseEntity) SurveyID() uuid.UUID        { return e.surveyID }
func (e *ResponseEntity) DeliveryType() DeliveryType { return e.deliveryType }
func (e *ResponseEntity) PhoneNumber() *PhoneNumber  { return e.phoneNumber }
func (e *ResponseEntity) Status() Status             { return e.status }
func (e *ResponseEntity) SubmittedAt() *time.Time    { return e.submittedAt }
func (e *ResponseEntity) CreatedAt() time.Time       { return e.createdAt }
