//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/errs"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/shared"
	"feedbackpro/tests/common/fakeuow"
	commandsmock "feedbackpro/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InviteCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *fakeuow.Store
	mockCtrl *gomock.Controller
	mockSms  *commandsmock.MockSmsSender
	cmds     commands.InviteCommands
	owner    shared.Actor
	business shared.BusinessSnapshot
	phone    response.PhoneNumber
}

func (s *InviteCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = fakeuow.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSms = commandsmock.NewMockSmsSender(s.mockCtrl)

	clk := clock.NewFrozen(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewInviteCommands(s.store, clk, s.mockSms, shared.NewLinks("https://feedback.example.com/"))

	u, b := s.store.AddOwner("Owner", true)
	s.owner = shared.Actor{UserID: u.ID, Role: u.Role}
	s.business = b

	phone, err := response.NewPhoneNumber("+15551234567")
	s.Require().NoError(err)
	s.phone = phone
}

func (s *InviteCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInviteCommandsSuite(t *testing.T) {
	suite.Run(t, new(InviteCommandsTestSuite))
}

func (s *InviteCommandsTestSuite) TestSendSmsInvite() {
	s.Run("mints a DIRECT_SMS link and texts it", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusActive)

		var sentBody string
		s.mockSms.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string) error {
				sentBody = body
				return nil
			}).Times(1)

		res, err := s.cmds.SendSmsInvite(s.ctx, s.owner, commands.SmsInviteRequest{SurveyID: sv.ID, Phone: s.phone})
		s.Require().NoError(err)
		s.True(res.SmsSent)
		s.Equal(response.DeliveryDirectSMS, res.DeliveryType)
		s.Equal("https://feedback.example.com/feedback/"+res.ResponseEntityID.String(), res.FeedbackURL)
		s.True(strings.Contains(sentBody, sv.Name))
		s.True(strings.HasSuffix(sentBody, res.FeedbackURL))

		e, ok := s.store.ResponseEntity(res.ResponseEntityID)
		s.Require().True(ok)
		s.Equal(response.StatusPending, e.Status)
		s.Equal(s.business.ID, e.BusinessID)
		s.Require().NotNil(e.PhoneNumber)
		s.Equal("+15551234567", *e.PhoneNumber)
	})

	s.Run("keeps the link when delivery fails", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusActive)
		s.mockSms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down")).Times(1)

		_, err := s.cmds.SendSmsInvite(s.ctx, s.owner, commands.SmsInviteRequest{SurveyID: sv.ID, Phone: s.phone})
		s.True(errs.Is(err, commands.ErrSmsDeliveryFailed))
		s.Len(s.store.ResponseEntitiesOf(sv.ID), 1)
	})

	s.Run("requires an active survey", func() {
		for _, st := range []survey.Status{survey.StatusDraft, survey.StatusArchived} {
			sv := s.store.AddSurvey(s.business.ID, st)

			_, err := s.cmds.SendSmsInvite(s.ctx, s.owner, commands.SmsInviteRequest{SurveyID: sv.ID, Phone: s.phone})
			s.True(errs.Is(err, commands.ErrSurveyNotActive), st)
			s.Empty(s.store.ResponseEntitiesOf(sv.ID))
		}
	})

	s.Run("hides surveys of other owners", func() {
		_, otherBiz := s.store.AddOwner("Other", true)
		sv := s.store.AddSurvey(otherBiz.ID, survey.StatusActive)

		_, err := s.cmds.SendSmsInvite(s.ctx, s.owner, commands.SmsInviteRequest{SurveyID: sv.ID, Phone: s.phone})
		s.True(errs.Is(err, commands.ErrSurveyNotFound))
	})

	s.Run("unknown survey", func() {
		_, err := s.cmds.SendSmsInvite(s.ctx, s.owner, commands.SmsInviteRequest{SurveyID: uuid.New(), Phone: s.phone})
		s.True(errs.Is(err, commands.ErrSurveyNotFound))
	})
}

func (s *InviteCommandsTestSuite) TestStartPublicResponse() {
	s.Run("no phone mints a QR link without texting", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusActive)

		res, err := s.cmds.StartPublicResponse(s.ctx, commands.PublicResponseRequest{SurveyID: sv.ID})
		s.Require().NoError(err)
		s.Equal(response.DeliveryQR, res.DeliveryType)
		s.False(res.SmsSent)

		e, _ := s.store.ResponseEntity(res.ResponseEntityID)
		s.Nil(e.PhoneNumber)
	})

	s.Run("phone switches to QR_INITIATED_SMS", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusActive)
		s.mockSms.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).Return(nil).Times(1)

		res, err := s.cmds.StartPublicResponse(s.ctx, commands.PublicResponseRequest{SurveyID: sv.ID, Phone: &s.phone})
		s.Require().NoError(err)
		s.Equal(response.DeliveryQRInitiatedSMS, res.DeliveryType)
		s.True(res.SmsSent)
	})

	s.Run("sms failure still returns the link", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusActive)
		s.mockSms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down")).Times(1)

		res, err := s.cmds.StartPublicResponse(s.ctx, commands.PublicResponseRequest{SurveyID: sv.ID, Phone: &s.phone})
		s.Require().NoError(err)
		s.False(res.SmsSent)
		s.NotEmpty(res.FeedbackURL)
	})

	s.Run("inactive survey", func() {
		sv := s.store.AddSurvey(s.business.ID, survey.StatusDraft)

		_, err := s.cmds.StartPublicResponse(s.ctx, commands.PublicResponseRequest{SurveyID: sv.ID})
		s.True(errs.Is(err, commands.ErrSurveyNotActive))
	})
}
