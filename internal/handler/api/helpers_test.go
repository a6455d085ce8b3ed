//go:build unit

package api_test

import (
	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ownerActor() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleBusinessOwner}
}

// asActor stands in for RequireAuth when a request carries an Authorization header.
func asActor(actor shared.Actor, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", actor.UserID)
			c.Set("user_role", actor.Role)
		}
		next(c)
	}
}
