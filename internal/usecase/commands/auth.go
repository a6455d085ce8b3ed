package commands

import (
	"context"
	"log/slog"

	"feedbackpro/internal/domain/business"
	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/jwt"
	"feedbackpro/internal/pkg/password"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("Invalid email or password")
	ErrUserInactive       = errs.New("user inactive")
	ErrEmailTaken         = errs.New("User with this email already exists")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type RegisterRequest struct {
	Name         user.Name
	Email        user.Email
	Password     user.Password
	BusinessName string
}

type LoginRequest struct {
	Email    user.Email
	Password string
}

type RegisterResult struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register creates a business owner and their business atomically.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	hash, err := password.Hash(req.Password.Value())
	if err != nil {
		return nil, err
	}

	var result RegisterResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := a.clock.Now()

		u := user.NewUser(req.Name, req.Email, hash, user.RoleBusinessOwner, now)
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsConstraint(err, infra.ConstraintUsersEmail) {
				return ErrEmailTaken
			}
			return err
		}
		result = RegisterResult{UserID: u.ID()}
		if !u.Role().OwnsBusiness() {
			return nil
		}

		b, err := business.NewBusiness(u.ID(), req.BusinessName, now)
		if err != nil {
			return err
		}
		if err := tx.Businesses().Create(ctx, b); err != nil {
			return err
		}

		result.BusinessID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	creds, err := a.uow.CommandReads().UserByEmail(ctx, req.Email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer, and roughly the same latency, as a wrong password
			password.Burn(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Matches(creds.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	pair, err := a.issueTokens(creds.ID, creds.Role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, creds.ID, a.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", creds.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    creds.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// the account may have been deactivated since the token was issued
	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
