package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EducationEntry is stored as part of the profile's education jsonb column.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Area      string `json:"area,omitempty"`
	StartYear string `json:"startYear,omitempty"`
	EndYear   string `json:"endYear,omitempty"`
}

// Links holds the profile's external link set, stored as jsonb.
type Links struct {
	GitHub    *string  `json:"github,omitempty"`
	LinkedIn  *string  `json:"linkedin,omitempty"`
	Portfolio *string  `json:"portfolio,omitempty"`
	Other     []string `json:"other,omitempty"`
}

// Profile is the aggregate root. UserID is set when the profile is bound to
// an authenticated account; at most one profile per account.
type Profile struct {
	ID        uuid.UUID        `json:"id"`
	UserID    *uuid.UUID       `json:"-"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Summary   *string          `json:"summary"`
	Education []EducationEntry `json:"education"`
	Skills    []string         `json:"skills"`
	Links     Links            `json:"links"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// First returns the earliest-created profile.
	First(ctx context.Context) (*Profile, error)
	// List returns all profiles ordered newest-first.
	List(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
