package work

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Highlight is one bullet line on a work experience, stored as jsonb.
type Highlight struct {
	Bullet string `json:"bullet"`
}

// WorkExperience belongs to exactly one profile and is removed with it.
type WorkExperience struct {
	ID         uuid.UUID   `json:"id"`
	ProfileID  uuid.UUID   `json:"-"`
	Role       string      `json:"role"`
	Company    string      `json:"company"`
	Location   *string     `json:"location"`
	StartDate  *string     `json:"startDate"`
	EndDate    *string     `json:"endDate"`
	Summary    *string     `json:"summary"`
	Highlights []Highlight `json:"highlights"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type Repository interface {
	CreateBatch(ctx context.Context, experiences []*WorkExperience) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*WorkExperience, error)
}
