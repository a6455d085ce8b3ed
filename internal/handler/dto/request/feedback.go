package request

import (
	"fmt"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/usecase/commands"

	"github.com/google/uuid"
)

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type SubmitFeedbackRequest struct {
	SurveyID         string          `json:"surveyId" binding:"required"`
	ResponseEntityID string          `json:"responseEntityId" binding:"required"`
	Answers          []AnswerRequest `json:"answers"`
}

func (r SubmitFeedbackRequest) ToCommand() (commands.SubmitFeedbackRequest, []FieldError) {
	var fe fieldErrors

	surveyID, err := uuid.Parse(r.SurveyID)
	if err != nil {
		fe.add("surveyId", errInvalidID)
	}
	entityID, err := uuid.Parse(r.ResponseEntityID)
	if err != nil {
		fe.add("responseEntityId", errInvalidID)
	}
	if len(r.Answers) == 0 {
		fe.add("answers", commands.ErrNoAnswers)
	}

	answers := make([]response.Answer, 0, len(r.Answers))
	for i, a := range r.Answers {
		qid, err := uuid.Parse(a.QuestionID)
		if err != nil {
			fe.add(fmt.Sprintf("answers[%d].questionId", i), errInvalidID)
			continue
		}
		ans, err := response.NewAnswer(qid, a.Answer)
		if err != nil {
			fe.add(fmt.Sprintf("answers[%d].answer", i), err)
			continue
		}
		answers = append(answers, ans)
	}
	if len(fe) > 0 {
		return commands.SubmitFeedbackRequest{}, fe
	}

	return commands.SubmitFeedbackRequest{
		SurveyID:         surveyID,
		ResponseEntityID: entityID,
		Answers:          answers,
	}, nil
}
