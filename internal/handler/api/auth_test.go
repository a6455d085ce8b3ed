//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"feedbackpro/internal/handler/api"
	reqdto "feedbackpro/internal/handler/dto/request"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/jwt"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"
	"feedbackpro/tests/common/builder"
	"feedbackpro/tests/common/httptest"
	"feedbackpro/tests/common/testutil"
	commandsmock "feedbackpro/tests/mock/commands"
	queriesmock "feedbackpro/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func loginCommand(s *AuthHandlerTestSuite, dto reqdto.LoginRequest) commands.LoginRequest {
	cmd, fieldErrs := dto.ToCommand()
	s.Require().Nil(fieldErrs)
	return cmd
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewUserBuilder().BuildRegisterDTO()
	result := &commands.RegisterResult{UserID: uuid.New(), BusinessID: uuid.New()}

	s.Run("success: returns 201 with user and business ids", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.RegisterRequest) (*commands.RegisterResult, error) {
				s.Equal("owner@example.com", req.Email.Value())
				s.Equal("Test Cafe", req.BusinessName)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal(result.UserID, response.UserID)
		s.Equal(result.BusinessID, response.BusinessID)
	})

	s.Run("success: blank business name defaults from the owner name", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.RegisterRequest) (*commands.RegisterResult, error) {
				s.Equal("Test Owner's Business", req.BusinessName)
				return result, nil
			}).Times(1)

		body := testutil.JSONBody(s.T(), reqBody, testutil.With("businessName", "  "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "password boundary OK (6 chars)", mutate: testutil.With("password", "secret"), expectCode: http.StatusCreated},
			{name: "password boundary invalid (5 chars)", mutate: testutil.With("password", strings.Repeat("a", 5)), expectCode: http.StatusBadRequest},
			{name: "name boundary invalid (1 char)", mutate: testutil.With("name", "A"), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.With("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Without("email"), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Without("password"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(result, nil)
				}
				body := testutil.JSONBody(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewUserBuilder().BuildLoginDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	pair := &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: returns 200 OK and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), loginCommand(s, reqBody)).
			Return(&commands.LoginResult{UserID: returnUser.ID, TokenPair: pair}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal(pair.AccessToken, access.Value)
		s.True(access.HttpOnly)
		refresh := httptest.ExtractCookie(rec, "refresh_token")
		s.Require().NotNil(refresh)
		s.Equal(pair.RefreshToken, refresh.Value)
		s.NotContains(rec.Body.String(), pair.AccessToken)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.With("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.With("email", "invalid-email"), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Without("email"), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Without("password"), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.With("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.With("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.JSONBody(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						expected := loginCommand(s, reqdto.LoginRequest{Email: email, Password: password})
						s.mockCommands.EXPECT().Login(gomock.Any(), expected).
							Return(&commands.LoginResult{UserID: returnUser.ID, TokenPair: pair}, nil)
						s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
							Return(returnUser, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), loginCommand(s, reqBody)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, "access_token"))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	refreshCookie := &http.Cookie{Name: "refresh_token", Value: "old-refresh"}

	s.Run("success: rotates both cookies", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{refreshCookie}, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("new-access", httptest.ExtractCookie(rec, "access_token").Value)
		s.Equal("new-refresh", httptest.ExtractCookie(rec, "refresh_token").Value)
	})

	s.Run("error: 401 without a refresh cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: failures clear the cookies", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "invalid token", err: commands.ErrTokenValidation, expectedStatus: http.StatusUnauthorized},
			{name: "deleted user", err: commands.ErrUserNotFound, expectedStatus: http.StatusUnauthorized},
			{name: "inactive user", err: commands.ErrUserInactive, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
					[]*http.Cookie{refreshCookie}, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
				cleared := httptest.ExtractCookie(rec, "access_token")
				s.Require().NotNil(cleared)
				s.Empty(cleared.Value)
				s.Less(cleared.MaxAge, 0)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
		s.Equal(returnUser.BusinessName != nil, response["businessName"] != nil)
	})

	s.Run("error: returns 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				queriesError:   queries.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "inactive account",
				queriesError:   shared.ErrInactiveAccount,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
