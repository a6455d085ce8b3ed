package response

import "github.com/google/uuid"

type SubmitFeedbackResponse struct {
	Success          bool                  `json:"success"`
	Message          string                `json:"message"`
	ResponseEntityID uuid.UUID             `json:"responseEntityId"`
	DiscountCode     *DiscountCodeResponse `json:"discountCode,omitempty"`
}
