package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/search"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: sr,
		logger:     log,
	}
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Query    string
	Profiles []search.ProfileHit
	Projects []search.ProjectHit
	Work     []search.WorkHit
}

// Execute searches each entity type independently and returns all three
// result sets. A blank query is rejected before any storage access.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, apperror.NewInvalidInput("Query parameter 'q' is required", nil)
	}

	uc.logger.Info("Executing keyword search", zap.String("query", input.Query))

	profiles, err := uc.searchRepo.SearchProfiles(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	projects, err := uc.searchRepo.SearchProjects(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	workHits, err := uc.searchRepo.SearchWork(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{
		Query:    input.Query,
		Profiles: profiles,
		Projects: projects,
		Work:     workHits,
	}, nil
}
