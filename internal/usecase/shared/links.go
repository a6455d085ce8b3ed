package shared

import (
	"strings"

	"github.com/google/uuid"
)

// Links builds the respondent-facing URLs handed out by SMS and QR codes.
type Links struct {
	BaseURL string
}

func NewLinks(baseURL string) Links {
	return Links{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (l Links) FeedbackURL(responseEntityID uuid.UUID) string {
	return l.BaseURL + "/feedback/" + responseEntityID.String()
}

func (l Links) SurveyURL(surveyID uuid.UUID) string {
	return l.BaseURL + "/s/" + surveyID.String()
}
