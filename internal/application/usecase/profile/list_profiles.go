package profile

import (
	"context"

	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/logger"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	logger      logger.Logger
}

func NewListProfilesUseCase(
	pRepo profile.Repository,
	prjRepo project.Repository,
	wRepo work.Repository,
	log logger.Logger,
) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		profileRepo: pRepo,
		projectRepo: prjRepo,
		workRepo:    wRepo,
		logger:      log,
	}
}

type ListProfilesOutput struct {
	Aggregates []*Aggregate
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	aggregates := make([]*Aggregate, len(profiles))
	for i, p := range profiles {
		projects, err := uc.projectRepo.ListByProfile(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		experiences, err := uc.workRepo.ListByProfile(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		aggregates[i] = &Aggregate{Profile: p, Projects: projects, Work: experiences}
	}

	return &ListProfilesOutput{Aggregates: aggregates}, nil
}
