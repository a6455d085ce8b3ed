package api

import (
	"net/http"

	reqdto "feedbackpro/internal/handler/dto/request"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/handler/httperr"
	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/cookie"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/jwt"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingRefreshToken = errs.New("refresh token missing")

type AuthHandler struct {
	cmds       commands.AuthCommands
	queries    queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		queries:    q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register business owner
// @Description Create a business owner account together with its business
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand()
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Success:    true,
		UserID:     result.UserID,
		BusinessID: result.BusinessID,
	})
}

// @Summary User login
// @Description Login with email and password. Tokens are set as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, fieldErrs := req.ToCommand()
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err, errorMapping{
			target:  commands.ErrUserNotFound,
			status:  http.StatusUnauthorized,
			message: commands.ErrInvalidCredentials.Error(),
		})
		return
	}

	current, err := h.queries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{User: current})
}

// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new token pair
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingRefreshToken, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cfg.Cookie)
		respondError(c, err, errorMapping{
			target:  commands.ErrUserNotFound,
			status:  http.StatusUnauthorized,
			message: "Invalid or expired token",
		})
		return
	}

	h.setTokenCookies(c, pair)
	c.Status(http.StatusNoContent)
}

// @Summary User logout
// @Description Clear the auth cookies
// @Tags auth
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// stateless JWT: clearing the cookies is all there is
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security CookieAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		// RequireAuth must run first
		httperr.AbortInternal(c, http.StatusInternalServerError, errUnauthorized)
		return
	}

	current, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}
