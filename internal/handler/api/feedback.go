package api

import (
	"net/http"

	reqdto "feedbackpro/internal/handler/dto/request"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	cmds commands.FeedbackCommands
	q    queries.FeedbackQueries
}

func NewFeedbackHandler(cmds commands.FeedbackCommands, q queries.FeedbackQueries) *FeedbackHandler {
	return &FeedbackHandler{cmds: cmds, q: q}
}

// @Summary Feedback form
// @Description Survey, ordered questions and business name for a single-use feedback link
// @Tags feedback
// @Produce json
// @Param responseEntityId path string true "Response entity ID"
// @Success 200 {object} queries.FeedbackFormView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/feedback/{responseEntityId} [get]
func (h *FeedbackHandler) GetForm(c *gin.Context) {
	id, ok := parseUUIDParam(c, "responseEntityId")
	if !ok {
		return
	}
	form, err := h.q.GetForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary Submit feedback
// @Description Submit answers for a feedback link. The link is consumed on success.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitFeedbackRequest true "Submission"
// @Success 200 {object} resdto.SubmitFeedbackResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand()
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	code, err := resdto.FromDiscountCode(result.DiscountCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SubmitFeedbackResponse{
		Success:          true,
		Message:          commands.SubmitSuccessMessage,
		ResponseEntityID: result.ResponseEntityID,
		DiscountCode:     code,
	})
}
