package survey

import "feedbackpro/internal/pkg/errs"

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

var (
	ErrInvalidStatus       = errs.NewValidation("status must be DRAFT, ACTIVE or ARCHIVED")
	ErrInvalidQuestionType = errs.NewValidation("question type must be TEXT, RATING_SCALE_5 or YES_NO")
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type QuestionType string

const (
	QuestionText         QuestionType = "TEXT"
	QuestionRatingScale5 QuestionType = "RATING_SCALE_5"
	QuestionYesNo        QuestionType = "YES_NO"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionRatingScale5, QuestionYesNo:
		return true
	default:
		return false
	}
}

func ParseQuestionType(s string) (QuestionType, error) {
	t := QuestionType(s)
	if !t.IsValid() {
		return "", ErrInvalidQuestionType
	}
	return t, nil
}
