package survey

import (
	"strings"
	"time"
	"unicode/utf8"

	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinNameLength = 3
	MaxNameLength = 200
)

var (
	ErrNameTooShort      = errs.NewValidation("survey name must be at least 3 characters")
	ErrNameTooLong       = errs.NewValidation("survey name must be at most 200 characters")
	ErrNoQuestions       = errs.NewValidation("at least one question is required")
	ErrEmptyQuestionText = errs.NewValidation("question text is required")
)

type QuestionInput struct {
	Text       string
	Type       QuestionType
	IsRequired bool
}

type Question struct {
	id         uuid.UUID
	text       string
	qtype      QuestionType
	position   int
	isRequired bool
}

func (q Question) ID() uuid.UUID      { return q.id }
func (q Question) Text() string       { return q.text }
func (q Question) Type() QuestionType { return q.qtype }
func (q Question) Position() int      { return q.position }
func (q Question) IsRequired() bool   { return q.isRequired }

type Survey struct {
	id          uuid.UUID
	businessID  uuid.UUID
	name        string
	description *string
	status      Status
	questions   []Question
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSurvey creates an ACTIVE survey. Question order follows the input slice.
func NewSurvey(businessID uuid.UUID, name string, description *string, inputs []QuestionInput, now time.Time) (*Survey, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]Question, 0, len(inputs))
	for i, in := range inputs {
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return nil, errs.Wrapf(ErrEmptyQuestionText, "question %d", i+1)
		}
		if !in.Type.IsValid() {
			return nil, errs.Wrapf(ErrInvalidQuestionType, "question %d", i+1)
		}
		questions = append(questions, Question{
			id:         uuid.New(),
			text:       text,
			qtype:      in.Type,
			position:   i,
			isRequired: in.IsRequired,
		})
	}

	return &Survey{
		id:          uuid.New(),
		businessID:  businessID,
		name:        name,
		description: normalizeDescription(description),
		status:      StatusActive,
		questions:   questions,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type Changes struct {
	Name        *string
	Description *string
	Status      *Status
}

// ValidateChanges checks a partial update without needing the current survey.
func ValidateChanges(c Changes) (Changes, error) {
	out := c
	if c.Name != nil {
		name, err := validateName(*c.Name)
		if err != nil {
			return Changes{}, err
		}
		out.Name = &name
	}
	if c.Status != nil && !c.Status.IsValid() {
		return Changes{}, ErrInvalidStatus
	}
	if c.Description != nil {
		d := strings.TrimSpace(*c.Description)
		out.Description = &d
	}
	return out, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < MinNameLength {
		return "", ErrNameTooShort
	}
	if n > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	v := strings.TrimSpace(*d)
	if v == "" {
		return nil
	}
	return &v
}

func (s *Survey) ID() uuid.UUID         { return s.id }
func (s *Survey) BusinessID() uuid.UUID { return s.businessID }
func (s *Survey) Name() string          { return s.name }
func (s *Survey) Description() *string  { return s.description }
func (s *Survey) Status() Status        { return s.status }
func (s *Survey) Questions() []Question { return s.questions }
func (s *Survey) CreatedAt() time.Time  { return s.createdAt }
func (s *Survey) UpdatedAt() time.Time  { return s.updatedAt }
