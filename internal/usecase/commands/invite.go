package commands

import (
	"context"
	"fmt"
	"log/slog"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSurveyNotActive   = errs.New("Survey must be active to collect feedback")
	ErrSmsDeliveryFailed = errs.New("Failed to send SMS invitation")
)

type SmsInviteRequest struct {
	SurveyID uuid.UUID
	Phone    response.PhoneNumber
}

type PublicResponseRequest struct {
	SurveyID uuid.UUID
	// Phone switches the link to QR_INITIATED_SMS and texts it to the respondent.
	Phone *response.PhoneNumber
}

type InviteResult struct {
	ResponseEntityID uuid.UUID
	DeliveryType     response.DeliveryType
	FeedbackURL      string
	SmsSent          bool
}

// InviteCommands mint single-use feedback links.
type InviteCommands interface {
	SendSmsInvite(ctx context.Context, actor shared.Actor, req SmsInviteRequest) (*InviteResult, error)
	StartPublicResponse(ctx context.Context, req PublicResponseRequest) (*InviteResult, error)
}

type inviteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	sms   SmsSender
	links shared.Links
}

func NewInviteCommands(uow shared.UnitOfWork, clk clock.Clock, sms SmsSender, links shared.Links) InviteCommands {
	return &inviteCommandsImpl{
		uow:   uow,
		clock: clk,
		sms:   sms,
		links: links,
	}
}

func (i *inviteCommandsImpl) SendSmsInvite(ctx context.Context, actor shared.Actor, req SmsInviteRequest) (*InviteResult, error) {
	if _, err := shared.RequireActive(ctx, i.uow.CommandReads(), actor); err != nil {
		return nil, err
	}

	sv, entityID, err := i.mint(ctx, req.SurveyID, response.DeliveryDirectSMS, &req.Phone, func(sv *shared.SurveySnapshot) error {
		if sv.OwnerID != actor.UserID && !actor.IsAdmin() {
			return ErrSurveyNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &InviteResult{
		ResponseEntityID: entityID,
		DeliveryType:     response.DeliveryDirectSMS,
		FeedbackURL:      i.links.FeedbackURL(entityID),
	}

	if err := i.sms.Send(ctx, req.Phone.String(), inviteMessage(sv.Name, result.FeedbackURL)); err != nil {
		slog.Error("sms invite delivery failed",
			"response_entity_id", entityID,
			"survey_id", sv.ID,
			"error", err.Error())
		return nil, errs.Mark(err, ErrSmsDeliveryFailed)
	}
	result.SmsSent = true

	return result, nil
}

func (i *inviteCommandsImpl) StartPublicResponse(ctx context.Context, req PublicResponseRequest) (*InviteResult, error) {
	deliveryType := response.DeliveryQR
	if req.Phone != nil {
		deliveryType = response.DeliveryQRInitiatedSMS
	}

	sv, entityID, err := i.mint(ctx, req.SurveyID, deliveryType, req.Phone, nil)
	if err != nil {
		return nil, err
	}

	result := &InviteResult{
		ResponseEntityID: entityID,
		DeliveryType:     deliveryType,
		FeedbackURL:      i.links.FeedbackURL(entityID),
	}

	if req.Phone != nil {
		// the link is already usable from the response body
		if err := i.sms.Send(ctx, req.Phone.String(), inviteMessage(sv.Name, result.FeedbackURL)); err != nil {
			slog.Warn("public response sms delivery failed",
				"response_entity_id", entityID,
				"error", err.Error())
		} else {
			result.SmsSent = true
		}
	}

	return result, nil
}

func (i *inviteCommandsImpl) mint(
	ctx context.Context,
	surveyID uuid.UUID,
	deliveryType response.DeliveryType,
	phone *response.PhoneNumber,
	authorize func(*shared.SurveySnapshot) error,
) (*shared.SurveySnapshot, uuid.UUID, error) {
	var (
		sv       *shared.SurveySnapshot
		entityID uuid.UUID
	)

	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reads().SurveyByID(ctx, surveyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSurveyNotFound
			}
			return err
		}
		if authorize != nil {
			if err := authorize(found); err != nil {
				return err
			}
		}
		if !found.IsActive() {
			return ErrSurveyNotActive
		}

		entity, err := response.NewResponseEntity(found.ID, deliveryType, phone, i.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.ResponseEntities().Create(ctx, entity); err != nil {
			return err
		}

		sv = found
		entityID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, uuid.Nil, err
	}
	return sv, entityID, nil
}

func inviteMessage(surveyName, link string) string {
	return fmt.Sprintf("You've been invited to provide feedback for %s. Please click this link: %s", surveyName, link)
}
