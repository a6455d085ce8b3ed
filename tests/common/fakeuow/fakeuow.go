//go:build unit

// Package fakeuow is an in-memory shared.UnitOfWork. Transactions are serialized
// and roll back on error, which is enough to exercise command logic without postgres.
package fakeuow

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"feedbackpro/internal/domain/business"
	"feedbackpro/internal/domain/discount"
	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/domain/survey"
	"feedbackpro/internal/domain/user"
	"feedbackpro/internal/infra"
	"feedbackpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRow struct {
	creds       shared.UserCredentials
	lastLoginAt *time.Time
}

type Store struct {
	mu sync.Mutex

	users      map[uuid.UUID]userRow
	businesses map[uuid.UUID]shared.BusinessSnapshot
	surveys    map[uuid.UUID]shared.SurveySnapshot
	entities   map[uuid.UUID]shared.ResponseEntitySnapshot
	answers    map[uuid.UUID][]response.Answer
	codes      map[uuid.UUID]shared.DiscountCodeSnapshot

	codeCollisions int
	commits        int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		users:      make(map[uuid.UUID]userRow),
		businesses: make(map[uuid.UUID]shared.BusinessSnapshot),
		surveys:    make(map[uuid.UUID]shared.SurveySnapshot),
		entities:   make(map[uuid.UUID]shared.ResponseEntitySnapshot),
		answers:    make(map[uuid.UUID][]response.Answer),
		codes:      make(map[uuid.UUID]shared.DiscountCodeSnapshot),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.clone()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.restore(saved)
		return err
	}
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

type state struct {
	users      map[uuid.UUID]userRow
	businesses map[uuid.UUID]shared.BusinessSnapshot
	surveys    map[uuid.UUID]shared.SurveySnapshot
	entities   map[uuid.UUID]shared.ResponseEntitySnapshot
	answers    map[uuid.UUID][]response.Answer
	codes      map[uuid.UUID]shared.DiscountCodeSnapshot
}

func (s *Store) clone() state {
	return state{
		users:      maps.Clone(s.users),
		businesses: maps.Clone(s.businesses),
		surveys:    maps.Clone(s.surveys),
		entities:   maps.Clone(s.entities),
		answers:    maps.Clone(s.answers),
		codes:      maps.Clone(s.codes),
	}
}

func (s *Store) restore(st state) {
	s.users = st.users
	s.businesses = st.businesses
	s.surveys = st.surveys
	s.entities = st.entities
	s.answers = st.answers
	s.codes = st.codes
}

// CollideCodes makes the next n discount code inserts fail on the code's unique index.
func (s *Store) CollideCodes(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codeCollisions = n
}

// Commits counts transactions that returned without error.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func uniqueViolation(constraint string) error {
	return infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type tx struct {
	s *Store
}

func (t *tx) Users() shared.UserRepository                      { return userRepo{t.s} }
func (t *tx) Businesses() shared.BusinessRepository             { return businessRepo{t.s} }
func (t *tx) Surveys() shared.SurveyRepository                  { return surveyRepo{t.s} }
func (t *tx) ResponseEntities() shared.ResponseEntityRepository { return entityRepo{t.s} }
func (t *tx) DiscountCodes() shared.DiscountCodeRepository      { return codeRepo{t.s} }
func (t *tx) Reads() shared.CommandReads                        { return &reads{s: t.s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, row := range r.s.users {
		if strings.EqualFold(row.creds.Email, u.Email().Value()) {
			return uniqueViolation(infra.ConstraintUsersEmail)
		}
	}
	r.s.users[u.ID()] = userRow{creds: shared.UserCredentials{
		UserSnapshot: shared.UserSnapshot{
			ID:       u.ID(),
			Name:     u.Name().Value(),
			Email:    u.Email().Value(),
			Role:     u.Role(),
			IsActive: u.IsActive(),
		},
		PasswordHash: u.PasswordHash(),
	}}
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	row, ok := r.s.users[userID]
	if !ok {
		return notFound("user")
	}
	row.lastLoginAt = &at
	r.s.users[userID] = row
	return nil
}

type businessRepo struct{ s *Store }

func (r businessRepo) Create(_ context.Context, b *business.Business) error {
	r.s.businesses[b.ID()] = shared.BusinessSnapshot{ID: b.ID(), OwnerID: b.OwnerID(), Name: b.Name()}
	return nil
}

type surveyRepo struct{ s *Store }

func (r surveyRepo) Create(_ context.Context, sv *survey.Survey) error {
	qs := make([]shared.QuestionSnapshot, 0, len(sv.Questions()))
	for _, q := range sv.Questions() {
		qs = append(qs, shared.QuestionSnapshot{
			ID:         q.ID(),
			Text:       q.Text(),
			Type:       q.Type(),
			Position:   q.Position(),
			IsRequired: q.IsRequired(),
		})
	}
	r.s.surveys[sv.ID()] = shared.SurveySnapshot{
		ID:          sv.ID(),
		BusinessID:  sv.BusinessID(),
		Name:        sv.Name(),
		Description: sv.Description(),
		Status:      sv.Status(),
		Questions:   qs,
		UpdatedAt:   sv.UpdatedAt(),
	}
	return nil
}

func (r surveyRepo) Update(_ context.Context, snap *shared.SurveySnapshot) (bool, error) {
	cur, ok := r.s.surveys[snap.ID]
	if !ok {
		return false, nil
	}
	cur.Name = snap.Name
	cur.Description = snap.Description
	cur.Status = snap.Status
	cur.UpdatedAt = snap.UpdatedAt
	r.s.surveys[snap.ID] = cur
	return true, nil
}

func (r surveyRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.s.surveys[id]; !ok {
		return false, nil
	}
	delete(r.s.surveys, id)
	for eid, e := range r.s.entities {
		if e.SurveyID != id {
			continue
		}
		delete(r.s.entities, eid)
		delete(r.s.answers, eid)
		for cid, c := range r.s.codes {
			if c.ResponseEntityID == eid {
				delete(r.s.codes, cid)
			}
		}
	}
	return true, nil
}

type entityRepo struct{ s *Store }

func (r entityRepo) Create(_ context.Context, e *response.ResponseEntity) error {
	sv, ok := r.s.surveys[e.SurveyID()]
	if !ok {
		return infra.WrapRepoErr("create response entity", nil, infra.KindForeignKeyViolated)
	}
	var phone *string
	if p := e.PhoneNumber(); p != nil {
		v := p.String()
		phone = &v
	}
	r.s.entities[e.ID()] = shared.ResponseEntitySnapshot{
		ID:           e.ID(),
		SurveyID:     e.SurveyID(),
		BusinessID:   sv.BusinessID,
		DeliveryType: e.DeliveryType(),
		PhoneNumber:  phone,
		Status:       e.Status(),
		SubmittedAt:  e.SubmittedAt(),
		CreatedAt:    e.CreatedAt(),
	}
	return nil
}

func (r entityRepo) MarkCompleted(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	e, ok := r.s.entities[id]
	if !ok || e.Status != response.StatusPending {
		return false, nil
	}
	e.Status = response.StatusCompleted
	e.SubmittedAt = &at
	r.s.entities[id] = e
	return true, nil
}

func (r entityRepo) SaveAnswers(_ context.Context, responseEntityID uuid.UUID, answers []response.Answer, _ time.Time) error {
	r.s.answers[responseEntityID] = slices.Clone(answers)
	return nil
}

type codeRepo struct{ s *Store }

func (r codeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, c := range r.s.codes {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r codeRepo) Insert(_ context.Context, dc *discount.DiscountCode) (*discount.DiscountCode, error) {
	if r.s.codeCollisions > 0 {
		r.s.codeCollisions--
		return nil, uniqueViolation(infra.ConstraintDiscountCode)
	}
	for _, c := range r.s.codes {
		if c.Code == dc.Code() {
			return nil, uniqueViolation(infra.ConstraintDiscountCode)
		}
		if c.ResponseEntityID == dc.ResponseEntityID() {
			return nil, nil
		}
	}
	stored := *shared.SnapshotFromDiscountCode(dc)
	r.s.codes[dc.ID()] = stored
	return stored.ToDomain(), nil
}

func (r codeRepo) MarkRedeemed(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	c, ok := r.s.codes[id]
	if !ok || c.IsRedeemed || (c.ExpiresAt != nil && !at.Before(*c.ExpiresAt)) {
		return false, nil
	}
	c.IsRedeemed = true
	c.RedeemedAt = &at
	c.UpdatedAt = at
	r.s.codes[id] = c
	return true, nil
}

// reads takes the store lock only when used outside a transaction.
type reads struct {
	s    *Store
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	defer r.enter()()
	row, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	u := row.creds.UserSnapshot
	return &u, nil
}

func (r *reads) UserByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	defer r.enter()()
	for _, row := range r.s.users {
		if strings.EqualFold(row.creds.Email, email) {
			c := row.creds
			return &c, nil
		}
	}
	return nil, notFound("user")
}

func (r *reads) BusinessByID(_ context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	defer r.enter()()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, notFound("business")
	}
	return &b, nil
}

func (r *reads) BusinessByOwner(_ context.Context, userID uuid.UUID) (*shared.BusinessSnapshot, error) {
	defer r.enter()()
	for _, b := range r.s.businesses {
		if b.OwnerID == userID {
			return &b, nil
		}
	}
	return nil, notFound("business")
}

func (r *reads) SurveyByID(_ context.Context, id uuid.UUID) (*shared.SurveySnapshot, error) {
	defer r.enter()()
	sv, ok := r.s.surveys[id]
	if !ok {
		return nil, notFound("survey")
	}
	if b, ok := r.s.businesses[sv.BusinessID]; ok {
		sv.BusinessName = b.Name
		sv.OwnerID = b.OwnerID
	}
	sv.Questions = slices.Clone(sv.Questions)
	return &sv, nil
}

func (r *reads) ResponseEntityByID(_ context.Context, id uuid.UUID) (*shared.ResponseEntitySnapshot, error) {
	defer r.enter()()
	e, ok := r.s.entities[id]
	if !ok {
		return nil, notFound("response entity")
	}
	return &e, nil
}

func (r *reads) DiscountCodeByResponseEntity(_ context.Context, responseEntityID uuid.UUID) (*shared.DiscountCodeSnapshot, error) {
	defer r.enter()()
	for _, c := range r.s.codes {
		if c.ResponseEntityID == responseEntityID {
			return &c, nil
		}
	}
	return nil, notFound("discount code")
}

func (r *reads) DiscountCodeByCode(_ context.Context, businessID uuid.UUID, code string) (*shared.DiscountCodeSnapshot, error) {
	defer r.enter()()
	for _, c := range r.s.codes {
		if c.BusinessID == businessID && c.Code == code {
			return &c, nil
		}
	}
	return nil, notFound("discount code")
}
