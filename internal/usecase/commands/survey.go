package commands

import (
	"context"
	"time"

	"feedbackpro/internal/domain/business"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/pkg/patch"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrSurveyNotFound also covers surveys the actor does not own.
var ErrSurveyNotFound = errs.New("Survey not found")

type CreateSurveyRequest struct {
	Name        string
	Description *string
	Questions   []survey.QuestionInput
}

type SurveyCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateSurveyRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, surveyID uuid.UUID, changes survey.Changes) error
	Delete(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) error
}

type surveyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSurveyCommands(uow shared.UnitOfWork, clk clock.Clock) SurveyCommands {
	return &surveyCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (s *surveyCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateSurveyRequest) (uuid.UUID, error) {
	owner, err := shared.RequireActive(ctx, s.uow.CommandReads(), actor)
	if err != nil {
		return uuid.Nil, err
	}

	var surveyID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := s.clock.Now()

		businessID, err := s.ensureBusiness(ctx, tx, owner, now)
		if err != nil {
			return err
		}

		sv, err := survey.NewSurvey(businessID, req.Name, req.Description, req.Questions, now)
		if err != nil {
			return err
		}
		if err := tx.Surveys().Create(ctx, sv); err != nil {
			return err
		}

		surveyID = sv.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return surveyID, nil
}

// ensureBusiness returns the owner's business, creating a default one for accounts registered without it.
func (s *surveyCommandsImpl) ensureBusiness(ctx context.Context, tx shared.Tx, owner *shared.UserSnapshot, now time.Time) (uuid.UUID, error) {
	b, err := tx.Reads().BusinessByOwner(ctx, owner.ID)
	if err == nil {
		return b.ID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	created, err := business.NewBusiness(owner.ID, owner.Name+"'s Business", now)
	if err != nil {
		return uuid.Nil, err
	}
	if err := tx.Businesses().Create(ctx, created); err != nil {
		return uuid.Nil, err
	}
	return created.ID(), nil
}

func (s *surveyCommandsImpl) Update(ctx context.Context, actor shared.Actor, surveyID uuid.UUID, changes survey.Changes) error {
	changes, err := survey.ValidateChanges(changes)
	if err != nil {
		return err
	}
	if _, err := shared.RequireActive(ctx, s.uow.CommandReads(), actor); err != nil {
		return err
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := loadOwnedSurvey(ctx, tx.Reads(), actor, surveyID)
		if err != nil {
			return err
		}

		updated := *current
		updated.Name = patch.Coalesce(changes.Name, current.Name)
		updated.Description = patch.OptionalText(changes.Description, current.Description)
		updated.Status = patch.Coalesce(changes.Status, current.Status)
		updated.UpdatedAt = s.clock.Now()

		ok, err := tx.Surveys().Update(ctx, &updated)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSurveyNotFound
		}
		return nil
	})
}

func (s *surveyCommandsImpl) Delete(ctx context.Context, actor shared.Actor, surveyID uuid.UUID) error {
	if _, err := shared.RequireActive(ctx, s.uow.CommandReads(), actor); err != nil {
		return err
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadOwnedSurvey(ctx, tx.Reads(), actor, surveyID); err != nil {
			return err
		}

		ok, err := tx.Surveys().Delete(ctx, surveyID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSurveyNotFound
		}
		return nil
	})
}

func loadOwnedSurvey(ctx context.Context, reads shared.CommandReads, actor shared.Actor, surveyID uuid.UUID) (*shared.SurveySnapshot, error) {
	sv, err := reads.SurveyByID(ctx, surveyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	if sv.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrSurveyNotFound
	}
	return sv, nil
}
