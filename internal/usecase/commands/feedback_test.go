//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/shared"
	"feedbackpro/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type FeedbackCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *fakeuow.Store
	clock    *clock.Frozen
	policy   commands.RewardPolicy
	cmds     commands.FeedbackCommands
	business shared.BusinessSnapshot
	survey   shared.SurveySnapshot
}

func (s *FeedbackCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = fakeuow.New()
	s.clock = clock.NewFrozen(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	policy, err := commands.NewRewardPolicy(config.NewTestConfig())
	s.Require().NoError(err)
	s.policy = policy

	discounts := commands.NewDiscountCommands(s.store, s.clock, policy)
	s.cmds = commands.NewFeedbackCommands(s.store, s.clock, discounts, policy)

	_, b := s.store.AddOwner("Owner", true)
	s.business = b
	s.survey = s.store.AddSurvey(b.ID, survey.StatusActive)
}

func TestFeedbackCommandsSuite(t *testing.T) {
	suite.Run(t, new(FeedbackCommandsTestSuite))
}

func (s *FeedbackCommandsTestSuite) answers(sv shared.SurveySnapshot) []response.Answer {
	values := map[survey.QuestionType]string{
		survey.QuestionRatingScale5: "5",
		survey.QuestionYesNo:        "yes",
		survey.QuestionText:         "Great coffee",
	}
	out := make([]response.Answer, 0, len(sv.Questions))
	for _, q := range sv.Questions {
		a, err := response.NewAnswer(q.ID, values[q.Type])
		s.Require().NoError(err)
		out = append(out, a)
	}
	return out
}

func (s *FeedbackCommandsTestSuite) submit(e shared.ResponseEntitySnapshot) (*commands.SubmitFeedbackResult, error) {
	return s.cmds.Submit(s.ctx, commands.SubmitFeedbackRequest{
		SurveyID:         e.SurveyID,
		ResponseEntityID: e.ID,
		Answers:          s.answers(s.survey),
	})
}

func (s *FeedbackCommandsTestSuite) TestSubmit() {
	s.Run("direct SMS submission completes the link and earns a code", func() {
		e := s.store.AddResponseEntity(s.survey, response.DeliveryDirectSMS, response.StatusPending)

		res, err := s.submit(e)
		s.Require().NoError(err)
		s.Equal(e.ID, res.ResponseEntityID)

		stored, _ := s.store.ResponseEntity(e.ID)
		s.Equal(response.StatusCompleted, stored.Status)
		s.Require().NotNil(stored.SubmittedAt)
		s.Equal(s.clock.Now(), *stored.SubmittedAt)
		s.Len(s.store.Answers(e.ID), 3)

		s.Require().NotNil(res.DiscountCode)
		code := res.DiscountCode
		s.Equal(e.ID, code.ResponseEntityID)
		s.Equal(s.business.ID, code.BusinessID)
		s.Equal(s.policy.DiscountType, code.Type)
		s.True(s.policy.DiscountValue.Equal(code.Value))
		s.Regexp(`^SAVE[A-HJ-NP-Z2-9]{8}$`, code.Code)
		s.Require().NotNil(code.ExpiresAt)
		s.Equal(s.clock.Now().Add(30*24*time.Hour), *code.ExpiresAt)
		s.False(code.IsRedeemed)
	})

	s.Run("non-qualifying channels get no code", func() {
		for _, dt := range []response.DeliveryType{response.DeliveryQR, response.DeliveryQRInitiatedSMS} {
			e := s.store.AddResponseEntity(s.survey, dt, response.StatusPending)

			res, err := s.submit(e)
			s.Require().NoError(err)
			s.Nil(res.DiscountCode, dt)
			s.Empty(s.store.DiscountCodesFor(e.ID))
		}
	})

	s.Run("a link can only be used once", func() {
		e := s.store.AddResponseEntity(s.survey, response.DeliveryQR, response.StatusPending)

		_, err := s.submit(e)
		s.Require().NoError(err)

		_, err = s.submit(e)
		s.True(errs.Is(err, commands.ErrAlreadySubmitted))
	})

	s.Run("concurrent submissions complete exactly once", func() {
		e := s.store.AddResponseEntity(s.survey, response.DeliveryDirectSMS, response.StatusPending)
		req := commands.SubmitFeedbackRequest{SurveyID: e.SurveyID, ResponseEntityID: e.ID, Answers: s.answers(s.survey)}

		const n = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.cmds.Submit(s.ctx, req)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errs.Is(err, commands.ErrAlreadySubmitted):
					rejected++
				}
			}()
		}
		wg.Wait()

		s.Equal(1, succeeded)
		s.Equal(n-1, rejected)
		s.Len(s.store.DiscountCodesFor(e.ID), 1)
	})

	s.Run("preconditions fail in order", func() {
		pending := s.store.AddResponseEntity(s.survey, response.DeliveryQR, response.StatusPending)
		completed := s.store.AddResponseEntity(s.survey, response.DeliveryQR, response.StatusCompleted)
		draft := s.store.AddSurvey(s.business.ID, survey.StatusDraft)
		draftLink := s.store.AddResponseEntity(draft, response.DeliveryQR, response.StatusPending)
		otherSurvey := s.store.AddSurvey(s.business.ID, survey.StatusActive)

		foreign, err := response.NewAnswer(uuid.New(), "yes")
		s.Require().NoError(err)

		cases := []struct {
			name string
			req  commands.SubmitFeedbackRequest
			err  error
		}{
			{
				name: "no answers",
				req:  commands.SubmitFeedbackRequest{SurveyID: s.survey.ID, ResponseEntityID: pending.ID},
				err:  commands.ErrNoAnswers,
			},
			{
				name: "unknown link",
				req:  commands.SubmitFeedbackRequest{SurveyID: s.survey.ID, ResponseEntityID: uuid.New(), Answers: s.answers(s.survey)},
				err:  commands.ErrInvalidLink,
			},
			{
				name: "already submitted wins over a bad survey",
				req:  commands.SubmitFeedbackRequest{SurveyID: uuid.New(), ResponseEntityID: completed.ID, Answers: s.answers(s.survey)},
				err:  commands.ErrAlreadySubmitted,
			},
			{
				name: "unknown survey",
				req:  commands.SubmitFeedbackRequest{SurveyID: uuid.New(), ResponseEntityID: pending.ID, Answers: s.answers(s.survey)},
				err:  commands.ErrSurveyInactive,
			},
			{
				name: "survey no longer active",
				req:  commands.SubmitFeedbackRequest{SurveyID: draft.ID, ResponseEntityID: draftLink.ID, Answers: s.answers(draft)},
				err:  commands.ErrSurveyInactive,
			},
			{
				name: "link belongs to another survey",
				req:  commands.SubmitFeedbackRequest{SurveyID: otherSurvey.ID, ResponseEntityID: pending.ID, Answers: s.answers(otherSurvey)},
				err:  commands.ErrSurveyMismatch,
			},
			{
				name: "question from elsewhere",
				req:  commands.SubmitFeedbackRequest{SurveyID: s.survey.ID, ResponseEntityID: pending.ID, Answers: []response.Answer{foreign}},
				err:  commands.ErrInvalidQuestion,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Submit(s.ctx, tc.req)
				s.True(errs.Is(err, tc.err), "got %v", err)
			})
		}

		stored, _ := s.store.ResponseEntity(pending.ID)
		s.Equal(response.StatusPending, stored.Status)
		s.Empty(s.store.Answers(pending.ID))
	})

	s.Run("issuance failure does not fail the submission", func() {
		e := s.store.AddResponseEntity(s.survey, response.DeliveryDirectSMS, response.StatusPending)
		s.store.CollideCodes(10)
		defer s.store.CollideCodes(0)

		res, err := s.submit(e)
		s.Require().NoError(err)
		s.Nil(res.DiscountCode)

		stored, _ := s.store.ResponseEntity(e.ID)
		s.Equal(response.StatusCompleted, stored.Status)
	})
}
