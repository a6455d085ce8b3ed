package api

import (
	"log/slog"
	"net/http"

	"feedbackpro/internal/domain/discount"
	reqdto "feedbackpro/internal/handler/dto/request"
	"feedbackpro/internal/handler/httperr"
	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidRequest = errs.NewValidation("invalid request")
	errUnauthorized   = errs.New("actor missing from context")
)

// errorMapping pairs a sentinel with its HTTP status. An empty message reuses the sentinel text.
type errorMapping struct {
	target  error
	status  int
	message string
}

// Sentinels compare by message as well as identity, so errors sharing a text share a row.
var errorMappings = []errorMapping{
	// auth
	{target: commands.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: commands.ErrEmailTaken, status: http.StatusConflict},
	{target: commands.ErrTokenValidation, status: http.StatusUnauthorized, message: "Invalid or expired token"},
	{target: commands.ErrUserInactive, status: http.StatusForbidden, message: "Account is inactive"},
	{target: shared.ErrInactiveAccount, status: http.StatusForbidden, message: "Account is inactive"},
	{target: queries.ErrUserNotFound, status: http.StatusNotFound, message: "User not found"},
	{target: shared.ErrBusinessAccessDenied, status: http.StatusForbidden},

	// surveys and links
	{target: commands.ErrSurveyNotFound, status: http.StatusNotFound},
	{target: queries.ErrSurveyNotFound, status: http.StatusNotFound},
	{target: queries.ErrSurveyUnavailable, status: http.StatusNotFound},
	{target: commands.ErrSurveyNotActive, status: http.StatusConflict},
	{target: commands.ErrSmsDeliveryFailed, status: http.StatusBadGateway},

	// feedback submission
	{target: commands.ErrInvalidLink, status: http.StatusNotFound},
	{target: commands.ErrAlreadySubmitted, status: http.StatusConflict},
	{target: commands.ErrSurveyInactive, status: http.StatusNotFound},
	{target: queries.ErrFeedbackLinkInvalid, status: http.StatusNotFound},
	{target: queries.ErrFeedbackSubmitted, status: http.StatusConflict},
	{target: commands.ErrSurveyMismatch, status: http.StatusBadRequest},
	{target: commands.ErrInvalidQuestion, status: http.StatusBadRequest},

	// discount codes
	{target: commands.ErrBusinessNotFound, status: http.StatusNotFound},
	{target: commands.ErrCodeNotFound, status: http.StatusNotFound},
	{target: commands.ErrResponseNotReady, status: http.StatusConflict},
	{target: commands.ErrCodeAlreadyIssued, status: http.StatusConflict},
	{target: discount.ErrAlreadyRedeemed, status: http.StatusConflict},
	{target: discount.ErrCodeExpired, status: http.StatusConflict},
	{target: discount.ErrCodeGenerationExhausted, status: http.StatusInternalServerError, message: "Failed to generate a unique discount code"},
}

// respondError maps a usecase error to a response. Overrides are checked first.
func respondError(c *gin.Context, err error, overrides ...errorMapping) {
	respondErrorWithDetail(c, err, nil, overrides...)
}

func respondErrorWithDetail(c *gin.Context, err error, detail any, overrides ...errorMapping) {
	for _, table := range [][]errorMapping{overrides, errorMappings} {
		for _, m := range table {
			if errs.Is(err, m.target) {
				msg := m.message
				if msg == "" {
					msg = m.target.Error()
				}
				httperr.AbortWithError(c, m.status, err, msg, detail)
				return
			}
		}
	}

	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), detail)
	case errs.Is(err, errs.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		slog.Error("unhandled usecase error",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error())
		httperr.AbortInternal(c, http.StatusInternalServerError, err)
	}
}

func respondValidation(c *gin.Context, fields []reqdto.FieldError) {
	httperr.AbortWithError(c, http.StatusBadRequest, errInvalidRequest, "Invalid request", fields)
}

// respondBindError reports malformed JSON and binding-tag failures as 400.
func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FromBindError(err))
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
	}
	return actor, ok
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrDomainValidation), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
