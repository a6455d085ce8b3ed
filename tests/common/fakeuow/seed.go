//go:build unit

package fakeuow

import (
	"context"
	"fmt"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
)

// AddOwner seeds an account and the business it owns.
func (s *Store) AddOwner(name string, active bool) (shared.UserSnapshot, shared.BusinessSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := shared.UserSnapshot{
		ID:       uuid.New(),
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Role:     user.RoleBusinessOwner,
		IsActive: active,
	}
	s.users[u.ID] = userRow{creds: shared.UserCredentials{UserSnapshot: u}}

	b := shared.BusinessSnapshot{ID: uuid.New(), OwnerID: u.ID, Name: name + " Cafe"}
	s.businesses[b.ID] = b
	return u, b
}

// AddUser seeds an account without a business.
func (s *Store) AddUser(name, email, passwordHash string, role user.Role, active bool) shared.UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := shared.UserSnapshot{ID: uuid.New(), Name: name, Email: email, Role: role, IsActive: active}
	s.users[u.ID] = userRow{creds: shared.UserCredentials{UserSnapshot: u, PasswordHash: passwordHash}}
	return u
}

// AddSurvey seeds a survey with one question per type, in the given order.
func (s *Store) AddSurvey(businessID uuid.UUID, status survey.Status, types ...survey.QuestionType) shared.SurveySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(types) == 0 {
		types = []survey.QuestionType{survey.QuestionRatingScale5, survey.QuestionYesNo, survey.QuestionText}
	}
	sv := shared.SurveySnapshot{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Customer Satisfaction",
		Status:     status,
		UpdatedAt:  time.Now(),
	}
	for i, t := range types {
		sv.Questions = append(sv.Questions, shared.QuestionSnapshot{
			ID:         uuid.New(),
			Text:       fmt.Sprintf("Question %d", i+1),
			Type:       t,
			Position:   i,
			IsRequired: t != survey.QuestionText,
		})
	}
	s.surveys[sv.ID] = sv

	if b, ok := s.businesses[businessID]; ok {
		sv.BusinessName = b.Name
		sv.OwnerID = b.OwnerID
	}
	return sv
}

func (s *Store) AddResponseEntity(sv shared.SurveySnapshot, deliveryType response.DeliveryType, status response.Status) shared.ResponseEntitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := shared.ResponseEntitySnapshot{
		ID:           uuid.New(),
		SurveyID:     sv.ID,
		BusinessID:   sv.BusinessID,
		DeliveryType: deliveryType,
		Status:       status,
		CreatedAt:    time.Now(),
	}
	if deliveryType.RequiresPhone() {
		phone := "+15551234567"
		e.PhoneNumber = &phone
	}
	if status == response.StatusCompleted {
		at := time.Now()
		e.SubmittedAt = &at
	}
	s.entities[e.ID] = e
	return e
}

func (s *Store) AddDiscountCode(c shared.DiscountCodeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[c.ID] = c
}

func (s *Store) SetUserActive(id uuid.UUID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.users[id]
	row.creds.IsActive = active
	s.users[id] = row
}

func (s *Store) LastLogin(id uuid.UUID) *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id].lastLoginAt
}

func (s *Store) UserByEmail(email string) (shared.UserCredentials, bool) {
	c, err := s.CommandReads().UserByEmail(context.Background(), email)
	if err != nil {
		return shared.UserCredentials{}, false
	}
	return *c, true
}

func (s *Store) BusinessesOf(ownerID uuid.UUID) []shared.BusinessSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.BusinessSnapshot
	for _, b := range s.businesses {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) Survey(id uuid.UUID) (shared.SurveySnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.surveys[id]
	return sv, ok
}

func (s *Store) ResponseEntity(id uuid.UUID) (shared.ResponseEntitySnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	return e, ok
}

func (s *Store) ResponseEntitiesOf(surveyID uuid.UUID) []shared.ResponseEntitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.ResponseEntitySnapshot
	for _, e := range s.entities {
		if e.SurveyID == surveyID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Answers(responseEntityID uuid.UUID) []response.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers[responseEntityID]
}

// DiscountCodesFor lists every code issued against a response entity.
func (s *Store) DiscountCodesFor(responseEntityID uuid.UUID) []shared.DiscountCodeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.DiscountCodeSnapshot
	for _, c := range s.codes {
		if c.ResponseEntityID == responseEntityID {
			out = append(out, c)
		}
	}
	return out
}
