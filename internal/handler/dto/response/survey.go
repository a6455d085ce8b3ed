package response

import (
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SurveyCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type SurveyListResponse struct {
	Surveys    []*queries.SurveyListItem `json:"surveys"`
	Pagination queries.Pagination        `json:"pagination"`
}

type SurveyResponsesResponse struct {
	Responses  []*queries.SurveyResponseView `json:"responses"`
	Pagination queries.Pagination            `json:"pagination"`
}

type InviteResponse struct {
	Success          bool      `json:"success"`
	ResponseEntityID uuid.UUID `json:"responseEntityId"`
	DeliveryType     string    `json:"type"`
	FeedbackURL      string    `json:"feedbackUrl"`
	SmsSent          bool      `json:"smsSent"`
}

func FromInviteResult(r *commands.InviteResult) (*InviteResponse, error) {
	out := InviteResponse{Success: true}
	if err := copier.Copy(&out, r); err != nil {
		return nil, err
	}
	return &out, nil
}
