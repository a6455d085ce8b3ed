//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"feedbackpro/internal/handler/dto/request"
	"feedbackpro/tests/common/dbtest"
	"feedbackpro/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is a logged-in owner as the API sees it.
type Session struct {
	UserID      uuid.UUID
	BusinessID  uuid.UUID
	AccessToken string
	Cookies     []*http.Cookie
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) (string, []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "access token cookie missing")
	require.NotEmpty(t, accessCookie.Value, "access token cookie is empty")

	return accessCookie.Value, httptest.ExtractCookies(w)
}

func CreateAndLogin(t *testing.T, db dbtest.Conn, router *gin.Engine, email, role string) Session {
	t.Helper()
	userID, businessID := dbtest.CreateTestOwner(t, db, email, role)
	token, cookies := LoginUser(t, router, email, dbtest.TestPassword)
	return Session{UserID: userID, BusinessID: businessID, AccessToken: token, Cookies: cookies}
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
