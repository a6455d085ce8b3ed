//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the same secret the app under test uses.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(access time.Duration) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, access, h.cfg.RefreshTokenDuration)
}

func (h *JWTHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.AccessTokenDuration).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(time.Minute).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// ExpiredAccessToken is already past its expiry when returned.
func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(-time.Minute).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
