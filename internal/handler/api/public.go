package api

import (
	"net/http"

	reqdto "feedbackpro/internal/handler/dto/request"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated QR entry point of a survey.
type PublicHandler struct {
	invites commands.InviteCommands
	q       queries.SurveyQueries
}

func NewPublicHandler(invites commands.InviteCommands, q queries.SurveyQueries) *PublicHandler {
	return &PublicHandler{invites: invites, q: q}
}

// @Summary Public survey
// @Description Survey summary shown before a respondent starts
// @Tags public
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} queries.PublicSurveyView
// @Failure 404 {object} httperr.Response
// @Router /api/public/surveys/{id} [get]
func (h *PublicHandler) GetSurvey(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetPublic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Start public response
// @Description Mint a QR feedback link, or a QR_INITIATED_SMS link texted to the given phone
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body reqdto.PublicResponseRequest false "Optional phone number"
// @Success 201 {object} resdto.InviteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/public/surveys/{id}/responses [post]
func (h *PublicHandler) StartResponse(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PublicResponseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	cmd, fieldErrs := req.ToCommand(id)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.invites.StartPublicResponse(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondInvite(c, result)
}
