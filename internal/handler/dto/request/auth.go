package request

import (
	"strings"

	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/usecase/commands"
)

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	BusinessName string `json:"businessName"`
}

// ToCommand defaults a blank business name to "<name>'s Business".
func (r RegisterRequest) ToCommand() (commands.RegisterRequest, []FieldError) {
	var fe fieldErrors

	name, err := user.NewName(r.Name)
	if err != nil {
		fe.add("name", err)
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		fe.add("email", err)
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		fe.add("password", err)
	}
	if len(fe) > 0 {
		return commands.RegisterRequest{}, fe
	}

	businessName := strings.TrimSpace(r.BusinessName)
	if businessName == "" {
		businessName = name.Value() + "'s Business"
	}

	return commands.RegisterRequest{
		Name:         name,
		Email:        email,
		Password:     password,
		BusinessName: businessName,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCommand() (commands.LoginRequest, []FieldError) {
	var fe fieldErrors
	email, err := user.NewEmail(r.Email)
	if err != nil {
		fe.add("email", err)
		return commands.LoginRequest{}, fe
	}
	return commands.LoginRequest{Email: email, Password: r.Password}, nil
}
