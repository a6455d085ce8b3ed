//go:build unit || e2e

package builder

import (
	"time"

	"feedbackpro/internal/domain/user"
	reqdto "feedbackpro/internal/handler/dto/request"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/pkg/pgconv"
	"feedbackpro/internal/pkg/ptr"
	"feedbackpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	BusinessID   *uuid.UUID
	BusinessName string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	businessID := uuid.New()
	return &UserBuilder{
		Name:         "Test Owner",
		Email:        "owner@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "BUSINESS_OWNER",
		BusinessID:   &businessID,
		BusinessName: "Test Cafe",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role, time.Now()), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           uuid.New(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
}

// BuildReadModel mirrors the /auth/me payload. Only owners carry a business.
func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var businessID *uuid.UUID
	var businessName *string
	if user.Role(u.Role).OwnsBusiness() && u.BusinessID != nil {
		businessID = u.BusinessID
		businessName = ptr.Of(u.BusinessName)
	}
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		BusinessID:   businessID,
		BusinessName: businessName,
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:         u.Name,
		Email:        u.Email,
		Password:     u.Password,
		BusinessName: u.BusinessName,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
