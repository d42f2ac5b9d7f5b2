package project

import (
	"context"
	"strings"

	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(pRepo project.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: pRepo,
		logger:      log,
	}
}

type ListProjectsInput struct {
	// Skill filters by exact, case-insensitive membership in a project's
	// skill set. Blank means no filter.
	Skill string
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	var projects []*project.Project
	var err error

	if skill := strings.TrimSpace(input.Skill); skill != "" {
		projects, err = uc.projectRepo.ListBySkill(ctx, skill)
	} else {
		projects, err = uc.projectRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
