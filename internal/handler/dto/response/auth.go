package response

import (
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

// LoginResponse carries the user only; tokens travel in cookies.
type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	Success    bool      `json:"success"`
	UserID     uuid.UUID `json:"userId"`
	BusinessID uuid.UUID `json:"businessId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
