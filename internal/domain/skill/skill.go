package skill

import "context"

// Count pairs a display label with its weighted frequency.
type Count struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Ranking is the top-skills aggregation result.
type Ranking struct {
	TopSkills         []Count `json:"topSkills"`
	TotalUniqueSkills int     `json:"totalUniqueSkills"`
}

type Repository interface {
	// ProfileSkills returns the skills declared on the earliest-created
	// profile, or an empty slice when no profile exists.
	ProfileSkills(ctx context.Context) ([]string, error)
	// ProjectSkillRows returns the skills array of every project in
	// creation order. Rows are kept separate so each occurrence counts.
	ProjectSkillRows(ctx context.Context) ([][]string, error)
}

// Cache is a best-effort store for the computed ranking. A nil ranking with
// a nil error means a miss.
type Cache interface {
	Get(ctx context.Context) (*Ranking, error)
	Set(ctx context.Context, r *Ranking) error
	Invalidate(ctx context.Context) error
}
