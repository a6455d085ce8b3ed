package request

import (
	"strings"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/usecase/commands"

	"github.com/google/uuid"
)

type SmsInviteRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func (r SmsInviteRequest) ToCommand(surveyID uuid.UUID) (commands.SmsInviteRequest, []FieldError) {
	var fe fieldErrors
	phone, err := response.NewPhoneNumber(r.PhoneNumber)
	if err != nil {
		fe.add("phoneNumber", err)
		return commands.SmsInviteRequest{}, fe
	}
	return commands.SmsInviteRequest{SurveyID: surveyID, Phone: phone}, nil
}

// PublicResponseRequest starts a QR flow. A blank phone number means no SMS.
type PublicResponseRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
}

func (r PublicResponseRequest) ToCommand(surveyID uuid.UUID) (commands.PublicResponseRequest, []FieldError) {
	req := commands.PublicResponseRequest{SurveyID: surveyID}
	if r.PhoneNumber == nil || strings.TrimSpace(*r.PhoneNumber) == "" {
		return req, nil
	}

	var fe fieldErrors
	phone, err := response.NewPhoneNumber(*r.PhoneNumber)
	if err != nil {
		fe.add("phoneNumber", err)
		return commands.PublicResponseRequest{}, fe
	}
	req.Phone = &phone
	return req, nil
}
