//go:build unit

package survey_test

import (
	"strings"
	"testing"
	"time"

	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions() []survey.QuestionInput {
	return []survey.QuestionInput{
		{Text: "How was your visit?", Type: survey.QuestionRatingScale5, IsRequired: true},
		{Text: "Would you come back?", Type: survey.QuestionYesNo, IsRequired: true},
		{Text: "Anything else?", Type: survey.QuestionText},
	}
}

func TestNewSurvey(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		s, err := survey.NewSurvey(uuid.New(), "  Lunch feedback ", ptr.Of("  "), validQuestions(), now)
		require.NoError(t, err)

		assert.Equal(t, "Lunch feedback", s.Name())
		assert.Nil(t, s.Description())
		assert.Equal(t, survey.StatusActive, s.Status())
		require.Len(t, s.Questions(), 3)
		for i, q := range s.Questions() {
			assert.Equal(t, i, q.Position())
			assert.NotEqual(t, uuid.Nil, q.ID())
		}
		assert.Equal(t, survey.QuestionYesNo, s.Questions()[1].Type())
		assert.False(t, s.Questions()[2].IsRequired())
	})

	cases := []struct {
		name      string
		surveyNm  string
		questions []survey.QuestionInput
		errIs     error
	}{
		{name: "name of 3 characters", surveyNm: "abc", questions: validQuestions()},
		{name: "name of 2 characters", surveyNm: "ab", questions: validQuestions(), errIs: survey.ErrNameTooShort},
		{name: "name too long", surveyNm: strings.Repeat("a", survey.MaxNameLength+1), questions: validQuestions(), errIs: survey.ErrNameTooLong},
		{name: "no questions", surveyNm: "Survey", errIs: survey.ErrNoQuestions},
		{
			name:      "blank question text",
			surveyNm:  "Survey",
			questions: []survey.QuestionInput{{Text: " ", Type: survey.QuestionText}},
			errIs:     survey.ErrEmptyQuestionText,
		},
		{
			name:      "unknown question type",
			surveyNm:  "Survey",
			questions: []survey.QuestionInput{{Text: "Q", Type: "SLIDER"}},
			errIs:     survey.ErrInvalidQuestionType,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := survey.NewSurvey(uuid.New(), tc.surveyNm, nil, tc.questions, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateChanges(t *testing.T) {
	out, err := survey.ValidateChanges(survey.Changes{Name: ptr.Of("  New name ")})
	require.NoError(t, err)
	assert.Equal(t, "New name", *out.Name)

	_, err = survey.ValidateChanges(survey.Changes{Name: ptr.Of("no")})
	require.ErrorIs(t, err, survey.ErrNameTooShort)

	_, err = survey.ValidateChanges(survey.Changes{Status: ptr.Of(survey.Status("CLOSED"))})
	require.ErrorIs(t, err, survey.ErrInvalidStatus)

	out, err = survey.ValidateChanges(survey.Changes{Status: ptr.Of(survey.StatusArchived)})
	require.NoError(t, err)
	assert.Nil(t, out.Name)
	assert.Equal(t, survey.StatusArchived, *out.Status)
}
