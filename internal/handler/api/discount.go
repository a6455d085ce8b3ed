package api

import (
	"net/http"

	reqdto "feedbackpro/internal/handler/dto/request"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	cmds   commands.DiscountCommands
	q      queries.DiscountQueries
	policy commands.RewardPolicy
	clock  clock.Clock
}

func NewDiscountHandler(cmds commands.DiscountCommands, q queries.DiscountQueries, policy commands.RewardPolicy, clk clock.Clock) *DiscountHandler {
	return &DiscountHandler{cmds: cmds, q: q, policy: policy, clock: clk}
}

// @Summary List discount codes
// @Description A business's discount codes, newest first
// @Tags discounts
// @Produce json
// @Security CookieAuth
// @Param businessId path string true "Business ID"
// @Param status query string false "all, active, redeemed or expired"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.DiscountCodeListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/businesses/{businessId}/discount-codes [get]
func (h *DiscountHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "businessId")
	if !ok {
		return
	}
	var query reqdto.ListDiscountCodesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	req, fieldErrs := query.ToQuery(businessID)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	items, pagination, err := h.q.List(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountCodeListResponse{DiscountCodes: items, Pagination: pagination})
}

// @Summary Issue discount code
// @Description Issue a code for a completed response. Type, value and expiry default to the reward policy.
// @Tags discounts
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.IssueDiscountRequest true "Issue request"
// @Success 201 {object} resdto.DiscountCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/businesses/{businessId}/discount-codes [post]
func (h *DiscountHandler) Issue(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "businessId")
	if !ok {
		return
	}
	var req reqdto.IssueDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand(businessID, h.policy, h.clock.Now())
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	issued, err := h.cmds.IssueForOwner(c.Request.Context(), actor, cmd)
	if err != nil {
		// the existing code rides along with the conflict
		var detail any
		if errs.Is(err, commands.ErrCodeAlreadyIssued) && issued != nil {
			detail, _ = resdto.FromDiscountCode(issued)
		}
		respondErrorWithDetail(c, err, detail)
		return
	}

	out, err := resdto.FromDiscountCode(issued)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary Redeem discount code
// @Description Mark a code redeemed. Redeemed or expired codes answer 409 with the current record.
// @Tags discounts
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.RedeemDiscountRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/businesses/{businessId}/discount-codes/redeem [post]
func (h *DiscountHandler) Redeem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "businessId")
	if !ok {
		return
	}
	var req reqdto.RedeemDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand(businessID)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), actor, cmd)
	if err != nil {
		var detail any
		if result != nil && result.DiscountCode != nil {
			detail, _ = resdto.FromDiscountCode(result.DiscountCode)
		}
		respondErrorWithDetail(c, err, detail)
		return
	}

	code, err := resdto.FromDiscountCode(result.DiscountCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RedeemDiscountResponse{
		Success:      true,
		Message:      result.Message,
		DiscountCode: code,
	})
}
