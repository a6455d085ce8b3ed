package api

import (
	"net/http"

	reqdto "feedbackpro/internal/handler/dto/request"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	cmds    commands.SurveyCommands
	invites commands.InviteCommands
	q       queries.SurveyQueries
}

func NewSurveyHandler(cmds commands.SurveyCommands, invites commands.InviteCommands, q queries.SurveyQueries) *SurveyHandler {
	return &SurveyHandler{cmds: cmds, invites: invites, q: q}
}

// @Summary Create survey
// @Description Create a survey with ordered questions. The owner's business is created on first use.
// @Tags surveys
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body reqdto.CreateSurveyRequest true "Create survey request"
// @Success 201 {object} resdto.SurveyCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/surveys [post]
func (h *SurveyHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand()
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/surveys/"+id.String())
	c.JSON(http.StatusCreated, resdto.SurveyCreatedResponse{ID: id})
}

// @Summary List surveys
// @Description List the caller's surveys with question and response counts, newest first
// @Tags surveys
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.SurveyListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/surveys [get]
func (h *SurveyHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	items, pagination, err := h.q.List(c.Request.Context(), actor, page.ToPageRequest())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SurveyListResponse{Surveys: items, Pagination: pagination})
}

// @Summary Get survey
// @Description Survey details with questions and response summary
// @Tags surveys
// @Produce json
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} queries.SurveyView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/surveys/{id} [get]
func (h *SurveyHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update survey
// @Description Partially update name, description or status
// @Tags surveys
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Param request body reqdto.UpdateSurveyRequest true "Update survey request"
// @Success 200 {object} queries.SurveyView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/surveys/{id} [patch]
func (h *SurveyHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	changes, fieldErrs := req.ToChanges()
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, changes); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete survey
// @Description Delete a survey with its questions, links, answers and codes
// @Tags surveys
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/surveys/{id} [delete]
func (h *SurveyHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List survey responses
// @Description Completed responses with their answers, newest submission first
// @Tags surveys
// @Produce json
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.SurveyResponsesResponse
// @Failure 404 {object} httperr.Response
// @Router /api/surveys/{id}/responses [get]
func (h *SurveyHandler) ListResponses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	items, pagination, err := h.q.ListResponses(c.Request.Context(), actor, id, page.ToPageRequest())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SurveyResponsesResponse{Responses: items, Pagination: pagination})
}

// @Summary Public survey link
// @Description URL a QR code for this survey should encode
// @Tags surveys
// @Produce json
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} queries.PublicLinkView
// @Failure 404 {object} httperr.Response
// @Router /api/surveys/{id}/public-link [get]
func (h *SurveyHandler) PublicLink(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	link, err := h.q.PublicLink(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// @Summary Send SMS invite
// @Description Mint a DIRECT_SMS feedback link and text it to the phone number
// @Tags surveys
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Survey ID"
// @Param request body reqdto.SmsInviteRequest true "SMS invite request"
// @Success 201 {object} resdto.InviteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/surveys/{id}/sms-invites [post]
func (h *SurveyHandler) SendSmsInvite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SmsInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand(id)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.invites.SendSmsInvite(c.Request.Context(), actor, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondInvite(c, result)
}

func respondInvite(c *gin.Context, result *commands.InviteResult) {
	out, err := resdto.FromInviteResult(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
