package request

import (
	"fmt"
	"strings"

	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"
)

type QuestionRequest struct {
	Text       string `json:"text"`
	Type       string `json:"type"`
	IsRequired *bool  `json:"isRequired"`
}

type CreateSurveyRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description *string           `json:"description"`
	Questions   []QuestionRequest `json:"questions" binding:"required"`
}

// ToCommand validates every question and reports each bad one by index.
// Questions are required unless the client says otherwise.
func (r CreateSurveyRequest) ToCommand() (commands.CreateSurveyRequest, []FieldError) {
	var fe fieldErrors

	name := strings.TrimSpace(r.Name)
	if _, err := survey.ValidateChanges(survey.Changes{Name: &name}); err != nil {
		fe.add("name", err)
	}
	if len(r.Questions) == 0 {
		fe.add("questions", survey.ErrNoQuestions)
	}

	inputs := make([]survey.QuestionInput, 0, len(r.Questions))
	for i, q := range r.Questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			fe.add(fmt.Sprintf("questions[%d].text", i), survey.ErrEmptyQuestionText)
		}
		qt, err := survey.ParseQuestionType(q.Type)
		if err != nil {
			fe.add(fmt.Sprintf("questions[%d].type", i), err)
		}
		required := true
		if q.IsRequired != nil {
			required = *q.IsRequired
		}
		inputs = append(inputs, survey.QuestionInput{Text: text, Type: qt, IsRequired: required})
	}
	if len(fe) > 0 {
		return commands.CreateSurveyRequest{}, fe
	}

	return commands.CreateSurveyRequest{
		Name:        name,
		Description: r.Description,
		Questions:   inputs,
	}, nil
}

type UpdateSurveyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r UpdateSurveyRequest) ToChanges() (survey.Changes, []FieldError) {
	var fe fieldErrors
	changes := survey.Changes{Description: r.Description}

	if r.Name != nil {
		name := *r.Name
		if _, err := survey.ValidateChanges(survey.Changes{Name: &name}); err != nil {
			fe.add("name", err)
		}
		changes.Name = &name
	}
	if r.Status != nil {
		st, err := survey.ParseStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		if err != nil {
			fe.add("status", err)
		}
		changes.Status = &st
	}
	if len(fe) > 0 {
		return survey.Changes{}, fe
	}

	validated, err := survey.ValidateChanges(changes)
	if err != nil {
		fe.add("survey", err)
		return survey.Changes{}, fe
	}
	return validated, nil
}

// PageQuery binds ?page=&limit=. Out-of-range values are clamped, not rejected.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (q PageQuery) ToPageRequest() queries.PageRequest {
	return queries.PageRequest{Page: q.Page, Limit: q.Limit}.Normalize()
}
