//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"feedbackpro/internal/handler/api"
	resdto "feedbackpro/internal/handler/dto/response"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/tests/common/builder"
	"feedbackpro/tests/common/httptest"
	"feedbackpro/tests/common/testutil"
	commandsmock "feedbackpro/tests/mock/commands"
	queriesmock "feedbackpro/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedbackHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFeedbackCommands
	mockQueries  *queriesmock.MockFeedbackQueries
}

func (s *FeedbackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFeedbackCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFeedbackQueries(s.mockCtrl)

	h := api.NewFeedbackHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/feedback/:responseEntityId", h.GetForm)
	s.router.POST("/feedback", h.Submit)
}

func (s *FeedbackHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedbackHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerTestSuite))
}

func (s *FeedbackHandlerTestSuite) TestGetForm() {
	sv := builder.NewSurveyBuilder()
	entity := builder.NewResponseEntityBuilder().ForSurvey(sv)
	url := "/feedback/" + entity.ID.String()

	s.Run("success: returns the form with ordered questions", func() {
		view := sv.BuildView()
		form := &queries.FeedbackFormView{
			ResponseEntityID: entity.ID,
			SurveyID:         sv.ID,
			SurveyName:       sv.Name,
			BusinessName:     sv.BusinessName,
			DeliveryType:     entity.DeliveryType.String(),
			Questions:        view.Questions,
		}
		s.mockQueries.EXPECT().GetForm(gomock.Any(), entity.ID).Return(form, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var out queries.FeedbackFormView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.Equal(sv.BusinessName, out.BusinessName)
		s.Require().Len(out.Questions, 3)
		s.Equal(int32(0), out.Questions[0].Position)
	})

	s.Run("error: maps link failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "unknown link", err: queries.ErrFeedbackLinkInvalid, status: http.StatusNotFound, msg: "Invalid feedback link"},
			{name: "already submitted", err: queries.ErrFeedbackSubmitted, status: http.StatusConflict, msg: "already been submitted"},
			{name: "survey inactive", err: queries.ErrSurveyUnavailable, status: http.StatusNotFound, msg: "inactive"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetForm(gomock.Any(), entity.ID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 400 for a malformed link id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/feedback/"+strings.ReplaceAll(uuid.NewString(), "-", "z"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid responseEntityId")
	})
}

func (s *FeedbackHandlerTestSuite) TestSubmit() {
	url := "/feedback"
	sv := builder.NewSurveyBuilder()
	entity := builder.NewResponseEntityBuilder().ForSurvey(sv)
	reqBody := entity.BuildSubmitDTO()

	s.Run("success: returns the discount code for a qualifying channel", func() {
		code := builder.NewDiscountCodeBuilder().WithResponseEntityID(entity.ID).BuildSnapshot()
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.SubmitFeedbackRequest) (*commands.SubmitFeedbackResult, error) {
				s.Equal(entity.ID, req.ResponseEntityID)
				s.Equal(sv.ID, req.SurveyID)
				s.Len(req.Answers, 3)
				return &commands.SubmitFeedbackResult{ResponseEntityID: entity.ID, DiscountCode: code}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var out resdto.SubmitFeedbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.True(out.Success)
		s.Equal(commands.SubmitSuccessMessage, out.Message)
		s.Require().NotNil(out.DiscountCode)
		s.Equal(code.Code, out.DiscountCode.Code)
		s.Equal("PERCENTAGE", out.DiscountCode.Type)
	})

	s.Run("success: reads answers from the answer key", func() {
		qid := sv.Questions[0].ID
		body := map[string]any{
			"surveyId":         sv.ID.String(),
			"responseEntityId": entity.ID.String(),
			"answers":          []map[string]any{{"questionId": qid.String(), "answer": "Great pasta"}},
		}
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.SubmitFeedbackRequest) (*commands.SubmitFeedbackResult, error) {
				s.Require().Len(req.Answers, 1)
				s.Equal(qid, req.Answers[0].QuestionID())
				s.Equal("Great pasta", req.Answers[0].Value())
				return &commands.SubmitFeedbackResult{ResponseEntityID: entity.ID}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("success: omits the discount code when none was issued", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitFeedbackResult{ResponseEntityID: entity.ID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var out map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.NotContains(out, "discountCode")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		qid := sv.Questions[0].ID.String()
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "no answers", mutate: testutil.With("answers", []any{})},
			{name: "missing answers", mutate: testutil.Without("answers")},
			{name: "malformed survey id", mutate: testutil.With("surveyId", "abc")},
			{name: "missing response entity id", mutate: testutil.Without("responseEntityId")},
			{name: "empty answer", mutate: testutil.With("answers", []map[string]any{{"questionId": qid, "answer": "  "}})},
			{name: "answer over 1000 characters", mutate: testutil.With("answers", []map[string]any{{"questionId": qid, "answer": strings.Repeat("x", 1001)}})},
			{name: "malformed question id", mutate: testutil.With("answers", []map[string]any{{"questionId": "q1", "answer": "yes"}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.JSONBody(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps submission failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown link", err: commands.ErrInvalidLink, status: http.StatusNotFound},
			{name: "second submission", err: commands.ErrAlreadySubmitted, status: http.StatusConflict},
			{name: "inactive survey", err: commands.ErrSurveyInactive, status: http.StatusNotFound},
			{name: "survey mismatch", err: commands.ErrSurveyMismatch, status: http.StatusBadRequest},
			{name: "foreign question", err: commands.ErrInvalidQuestion, status: http.StatusBadRequest},
			{name: "storage failure", err: errors.New("db down"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}
