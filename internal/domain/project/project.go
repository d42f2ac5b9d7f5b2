package project

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Links holds the project's external link set, stored as jsonb.
type Links struct {
	Demo  *string  `json:"demo,omitempty"`
	Repo  *string  `json:"repo,omitempty"`
	Docs  *string  `json:"docs,omitempty"`
	Other []string `json:"other,omitempty"`
}

// Project belongs to exactly one profile and is removed with it.
type Project struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Links       Links     `json:"links"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository interface {
	CreateBatch(ctx context.Context, projects []*Project) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*Project, error)
	ListAll(ctx context.Context) ([]*Project, error)
	// ListBySkill matches a skill element exactly, ignoring case.
	ListBySkill(ctx context.Context, skill string) ([]*Project, error)
}
