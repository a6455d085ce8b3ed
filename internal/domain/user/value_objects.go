package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"feedbackpro/internal/pkg/errs"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
	// bcrypt only reads the first 72 bytes
	MaxPasswordBytes = 72
)

var (
	ErrInvalidEmail    = errs.NewValidation("invalid email format")
	ErrInvalidRole     = errs.NewValidation("invalid role")
	ErrNameTooShort    = errs.NewValidation("name must be at least 2 characters")
	ErrPasswordTooWeak = errs.NewValidation("password must be at least 6 characters long")
	ErrPasswordTooLong = errs.NewValidation("password must be at most 72 bytes")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases s so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinNameLength {
		return Name{}, ErrNameTooShort
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
