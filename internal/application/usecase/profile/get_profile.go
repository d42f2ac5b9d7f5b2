package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/logger"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	logger      logger.Logger
}

func NewGetProfileUseCase(
	pRepo profile.Repository,
	prjRepo project.Repository,
	wRepo work.Repository,
	log logger.Logger,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: pRepo,
		projectRepo: prjRepo,
		workRepo:    wRepo,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Aggregate *Aggregate
}

func (uc *GetProfileUseCase) ExecuteByID(ctx context.Context, profileID uuid.UUID) (*GetProfileOutput, error) {
	agg, err := loadAggregate(ctx, uc.profileRepo, uc.projectRepo, uc.workRepo, profileID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Aggregate: agg}, nil
}

// ExecuteByUser resolves the profile owned by the authenticated account.
func (uc *GetProfileUseCase) ExecuteByUser(ctx context.Context, userID uuid.UUID) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.ExecuteByID(ctx, p.ID)
}
