//go:build unit

package response_test

import (
	"strings"
	"testing"
	"time"

	"feedbackpro/internal/domain/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEntity(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	phone, err := response.NewPhoneNumber("+15551234567")
	require.NoError(t, err)

	t.Run("new entity starts pending", func(t *testing.T) {
		e, err := response.NewResponseEntity(uuid.New(), response.DeliveryDirectSMS, &phone, now)
		require.NoError(t, err)
		assert.Equal(t, response.StatusPending, e.Status())
		assert.Nil(t, e.SubmittedAt())
		assert.True(t, e.IsPending())
	})

	t.Run("delivery type rules", func(t *testing.T) {
		cases := []struct {
			name  string
			typ   response.DeliveryType
			phone *response.PhoneNumber
			errIs error
		}{
			{name: "QR without phone", typ: response.DeliveryQR},
			{name: "QR initiated SMS with phone", typ: response.DeliveryQRInitiatedSMS, phone: &phone},
			{name: "QR initiated SMS without phone", typ: response.DeliveryQRInitiatedSMS, errIs: response.ErrPhoneRequired},
			{name: "direct SMS without phone", typ: response.DeliveryDirectSMS, errIs: response.ErrPhoneRequired},
			{name: "unknown type", typ: "EMAIL", errIs: response.ErrInvalidDeliveryType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				e, err := response.NewResponseEntity(uuid.New(), tc.typ, tc.phone, now)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, e)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.typ, e.DeliveryType())
			})
		}
	})

	t.Run("complete is one-way", func(t *testing.T) {
		e, err := response.NewResponseEntity(uuid.New(), response.DeliveryQR, nil, now)
		require.NoError(t, err)

		at := now.Add(time.Minute)
		require.NoError(t, e.Complete(at))
		assert.Equal(t, response.StatusCompleted, e.Status())
		assert.Equal(t, at, *e.SubmittedAt())

		require.ErrorIs(t, e.Complete(at.Add(time.Minute)), response.ErrAlreadyCompleted)
		assert.Equal(t, at, *e.SubmittedAt())
	})
}

func TestPhoneNumber(t *testing.T) {
	valid := []string{"5551234567", "+5551234567", "+123456789012345", " 5551234567 "}
	for _, s := range valid {
		_, err := response.NewPhoneNumber(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{"", "555123456", "+1234567890123456", "555-123-4567", "++5551234567", "abcdefghij"}
	for _, s := range invalid {
		_, err := response.NewPhoneNumber(s)
		assert.ErrorIs(t, err, response.ErrInvalidPhoneNumber, s)
	}
}

func TestAnswer(t *testing.T) {
	qid := uuid.New()

	cases := []struct {
		name  string
		qid   uuid.UUID
		value string
		errIs error
	}{
		{name: "single character", qid: qid, value: "a"},
		{name: "max length", qid: qid, value: strings.Repeat("a", response.MaxAnswerLength)},
		{name: "max length in multibyte characters", qid: qid, value: strings.Repeat("é", response.MaxAnswerLength)},
		{name: "over max length", qid: qid, value: strings.Repeat("a", response.MaxAnswerLength+1), errIs: response.ErrAnswerTooLong},
		{name: "empty", qid: qid, value: "", errIs: response.ErrEmptyAnswer},
		{name: "whitespace only", qid: qid, value: "   ", errIs: response.ErrEmptyAnswer},
		{name: "missing question", qid: uuid.Nil, value: "yes", errIs: response.ErrMissingQuestionID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := response.NewAnswer(tc.qid, tc.value)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.qid, a.QuestionID())
		})
	}
}
