//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/jwt"
	"feedbackpro/internal/pkg/password"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *fakeuow.Store
	jwtSvc *jwt.Service
	clock  *clock.Frozen
	cmds   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = fakeuow.New()
	s.jwtSvc = jwt.NewService("commands-secret", 15*time.Minute, 24*time.Hour)
	s.clock = clock.NewFrozen(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewAuthCommands(s.store, s.jwtSvc, s.clock)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) registerRequest(email, businessName string) commands.RegisterRequest {
	name, err := user.NewName("Jane Owner")
	s.Require().NoError(err)
	mail, err := user.NewEmail(email)
	s.Require().NoError(err)
	pw, err := user.NewPassword("secret123")
	s.Require().NoError(err)
	return commands.RegisterRequest{Name: name, Email: mail, Password: pw, BusinessName: businessName}
}

func (s *AuthCommandsTestSuite) loginRequest(email, pw string) commands.LoginRequest {
	mail, err := user.NewEmail(email)
	s.Require().NoError(err)
	return commands.LoginRequest{Email: mail, Password: pw}
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("creates the owner and business together", func() {
		res, err := s.cmds.Register(s.ctx, s.registerRequest("jane@example.com", "Jane's Bakery"))
		s.Require().NoError(err)

		creds, ok := s.store.UserByEmail("jane@example.com")
		s.Require().True(ok)
		s.Equal(res.UserID, creds.ID)
		s.Equal(user.RoleBusinessOwner, creds.Role)
		s.True(creds.IsActive)
		s.NotEqual("secret123", creds.PasswordHash)
		s.True(password.Matches(creds.PasswordHash, "secret123"))

		businesses := s.store.BusinessesOf(res.UserID)
		s.Require().Len(businesses, 1)
		s.Equal(res.BusinessID, businesses[0].ID)
		s.Equal("Jane's Bakery", businesses[0].Name)
	})

	s.Run("rejects a duplicate email without committing", func() {
		_, err := s.cmds.Register(s.ctx, s.registerRequest("dup@example.com", "First"))
		s.Require().NoError(err)
		before := s.store.Commits()

		_, err = s.cmds.Register(s.ctx, s.registerRequest("DUP@example.com", "Second"))
		s.True(errs.Is(err, commands.ErrEmailTaken))
		s.Equal(before, s.store.Commits())
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	_, err := s.cmds.Register(s.ctx, s.registerRequest("login@example.com", "Login Co"))
	s.Require().NoError(err)
	creds, _ := s.store.UserByEmail("login@example.com")

	s.Run("issues an access and refresh pair", func() {
		res, err := s.cmds.Login(s.ctx, s.loginRequest("login@example.com", "secret123"))
		s.Require().NoError(err)
		s.Equal(creds.ID, res.UserID)

		access, err := s.jwtSvc.ValidateToken(res.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, access.TokenType)
		s.Equal("BUSINESS_OWNER", access.Role)

		refresh, err := s.jwtSvc.ValidateToken(res.TokenPair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, refresh.TokenType)

		s.Require().NotNil(s.store.LastLogin(creds.ID))
		s.Equal(s.clock.Now(), *s.store.LastLogin(creds.ID))
	})

	s.Run("unknown email and wrong password look the same", func() {
		_, err := s.cmds.Login(s.ctx, s.loginRequest("nobody@example.com", "secret123"))
		s.True(errs.Is(err, commands.ErrInvalidCredentials))

		_, err = s.cmds.Login(s.ctx, s.loginRequest("login@example.com", "wrong-password"))
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("inactive accounts cannot log in", func() {
		s.store.SetUserActive(creds.ID, false)
		defer s.store.SetUserActive(creds.ID, true)

		_, err := s.cmds.Login(s.ctx, s.loginRequest("login@example.com", "secret123"))
		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	hash, err := password.Hash("secret123")
	s.Require().NoError(err)
	u := s.store.AddUser("Refresh User", "refresh@example.com", hash, user.RoleBusinessOwner, true)

	s.Run("rotates a valid refresh token", func() {
		refresh, err := s.jwtSvc.GenerateRefreshToken(u.ID, u.Role)
		s.Require().NoError(err)

		pair, err := s.cmds.RefreshToken(s.ctx, refresh)
		s.Require().NoError(err)

		claims, err := s.jwtSvc.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(u.ID, claims.UserID)
	})

	s.Run("rejects an access token", func() {
		access, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Role)
		s.Require().NoError(err)

		_, err = s.cmds.RefreshToken(s.ctx, access)
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("rejects garbage", func() {
		_, err := s.cmds.RefreshToken(s.ctx, "garbage")
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("rejects a deactivated account", func() {
		refresh, err := s.jwtSvc.GenerateRefreshToken(u.ID, u.Role)
		s.Require().NoError(err)
		s.store.SetUserActive(u.ID, false)
		defer s.store.SetUserActive(u.ID, true)

		_, err = s.cmds.RefreshToken(s.ctx, refresh)
		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("rejects a deleted account", func() {
		refresh, err := s.jwtSvc.GenerateRefreshToken(uuid.New(), user.RoleAdmin)
		s.Require().NoError(err)

		_, err = s.cmds.RefreshToken(s.ctx, refresh)
		s.True(errs.Is(err, commands.ErrUserNotFound))
	})
}
