package commands

import (
	"context"
	"log/slog"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidLink      = errs.New("Invalid feedback link. Please check the URL and try again.")
	ErrAlreadySubmitted = errs.New("Feedback has already been submitted for this link.")
	ErrSurveyInactive   = errs.New("Survey not found or is inactive.")
	ErrSurveyMismatch   = errs.New("Invalid survey for this feedback link.")
	ErrInvalidQuestion  = errs.New("Invalid question ID detected.")
	ErrNoAnswers        = errs.NewValidation("at least one answer is required")
)

const SubmitSuccessMessage = "Thank you for your feedback!"

type SubmitFeedbackRequest struct {
	SurveyID         uuid.UUID
	ResponseEntityID uuid.UUID
	Answers          []response.Answer
}

type SubmitFeedbackResult struct {
	ResponseEntityID uuid.UUID
	// DiscountCode is set when the delivery channel earned a reward and issuance succeeded.
	DiscountCode *shared.DiscountCodeSnapshot
}

type FeedbackCommands interface {
	Submit(ctx context.Context, req SubmitFeedbackRequest) (*SubmitFeedbackResult, error)
}

type feedbackCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	discounts DiscountCommands
	policy    RewardPolicy
}

func NewFeedbackCommands(uow shared.UnitOfWork, clk clock.Clock, discounts DiscountCommands, policy RewardPolicy) FeedbackCommands {
	return &feedbackCommandsImpl{
		uow:       uow,
		clock:     clk,
		discounts: discounts,
		policy:    policy,
	}
}

func (f *feedbackCommandsImpl) Submit(ctx context.Context, req SubmitFeedbackRequest) (*SubmitFeedbackResult, error) {
	if len(req.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	var entity *shared.ResponseEntitySnapshot
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := f.checkSubmission(ctx, tx.Reads(), req)
		if err != nil {
			return err
		}

		now := f.clock.Now()
		completed, err := tx.ResponseEntities().MarkCompleted(ctx, e.ID, now)
		if err != nil {
			return err
		}
		if !completed {
			return ErrAlreadySubmitted
		}

		if err := tx.ResponseEntities().SaveAnswers(ctx, e.ID, req.Answers, now); err != nil {
			return err
		}

		entity = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SubmitFeedbackResult{ResponseEntityID: entity.ID}

	if f.policy.Qualifies(entity.DeliveryType) {
		code, err := f.discounts.Issue(ctx, IssueDiscountRequest{
			ResponseEntityID: entity.ID,
			BusinessID:       entity.BusinessID,
			Type:             f.policy.DiscountType,
			Value:            f.policy.DiscountValue,
			ExpiresAt:        f.policy.ExpiryFrom(f.clock.Now()),
		})
		if err != nil {
			slog.Warn("discount issuance after feedback submission failed",
				"response_entity_id", entity.ID,
				"delivery_type", entity.DeliveryType.String(),
				"error", err.Error())
		} else {
			result.DiscountCode = code
		}
	}

	return result, nil
}

// checkSubmission applies the submission preconditions in order; the first failure wins.
func (f *feedbackCommandsImpl) checkSubmission(ctx context.Context, reads shared.CommandReads, req SubmitFeedbackRequest) (*shared.ResponseEntitySnapshot, error) {
	entity, err := reads.ResponseEntityByID(ctx, req.ResponseEntityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidLink
		}
		return nil, err
	}
	if entity.Status != response.StatusPending {
		return nil, ErrAlreadySubmitted
	}

	s, err := reads.SurveyByID(ctx, req.SurveyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyInactive
		}
		return nil, err
	}
	if !s.IsActive() {
		return nil, ErrSurveyInactive
	}

	if entity.SurveyID != s.ID {
		return nil, ErrSurveyMismatch
	}

	for _, a := range req.Answers {
		if !s.HasQuestion(a.QuestionID()) {
			return nil, ErrInvalidQuestion
		}
	}

	return entity, nil
}
