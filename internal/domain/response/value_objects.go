package response

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxAnswerLength = 1000

var (
	ErrInvalidPhoneNumber = errs.NewValidation("phone number must be 10 to 15 digits with an optional leading +")
	ErrEmptyAnswer        = errs.NewValidation("answer cannot be empty")
	ErrAnswerTooLong      = errs.NewValidation("answer exceeds maximum length")
	ErrMissingQuestionID  = errs.NewValidation("question id is required")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) String() string { return p.value }

// Answer is one respondent answer to one question. Length counts characters, not bytes.
type Answer struct {
	questionID uuid.UUID
	value      string
}

func NewAnswer(questionID uuid.UUID, value string) (Answer, error) {
	if questionID == uuid.Nil {
		return Answer{}, ErrMissingQuestionID
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return Answer{}, ErrEmptyAnswer
	}
	if utf8.RuneCountInString(v) > MaxAnswerLength {
		return Answer{}, ErrAnswerTooLong
	}
	return Answer{questionID: questionID, value: v}, nil
}

func (a Answer) QuestionID() uuid.UUID { return a.questionID }
func (a Answer) Value() string         { return a.value }
