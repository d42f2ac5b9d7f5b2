package search

import (
	"context"

	"github.com/google/uuid"
)

// Hit types carry the trimmed projections returned by keyword search.

type ProfileHit struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Summary *string   `json:"summary"`
	Skills  []string  `json:"skills"`
}

type ProjectHit struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
}

type WorkHit struct {
	ID      uuid.UUID `json:"id"`
	Role    string    `json:"role"`
	Company string    `json:"company"`
	Summary *string   `json:"summary"`
}

// Repository implementations match the query as a case-insensitive
// substring; each entity type is searched independently.
type Repository interface {
	SearchProfiles(ctx context.Context, query string) ([]ProfileHit, error)
	SearchProjects(ctx context.Context, query string) ([]ProjectHit, error)
	SearchWork(ctx context.Context, query string) ([]WorkHit, error)
}
