package business

import (
	"strings"
	"time"

	"feedbackpro/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyName = errs.NewValidation("business name is required")

// Business belongs to exactly one owner.
type Business struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewBusiness(ownerID uuid.UUID, name string, now time.Time) (*Business, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Business{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (b *Business) ID() uuid.UUID        { return b.id }
func (b *Business) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Business) Name() string         { return b.name }
func (b *Business) CreatedAt() time.Time { return b.createdAt }
func (b *Business) UpdatedAt() time.Time { return b.updatedAt }
