package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/J33rry/predusk/internal/domain/event"
	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	publisher   event.Publisher
	skillsCache skill.Cache
	logger      logger.Logger
}

func NewUpdateProfileUseCase(
	pRepo profile.Repository,
	prjRepo project.Repository,
	wRepo work.Repository,
	publisher event.Publisher,
	skillsCache skill.Cache,
	log logger.Logger,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: pRepo,
		projectRepo: prjRepo,
		workRepo:    wRepo,
		publisher:   publisher,
		skillsCache: skillsCache,
		logger:      log,
	}
}

// UpdateProfileInput carries a partial patch: nil fields keep their stored
// values. A nil ProfileID targets the earliest-created profile.
type UpdateProfileInput struct {
	ProfileID *uuid.UUID
	Name      *string
	Email     *string
	Summary   *string
	Education *[]profile.EducationEntry
	Skills    *[]string
	Links     *profile.Links
}

type UpdateProfileOutput struct {
	Aggregate *Aggregate
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	var p *profile.Profile
	var err error

	if input.ProfileID != nil {
		p, err = uc.profileRepo.GetByID(ctx, *input.ProfileID)
	} else {
		p, err = uc.profileRepo.First(ctx)
	}
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != p.Email {
		owner, err := uc.profileRepo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		if owner != nil && owner.ID != p.ID {
			return nil, apperror.NewConflict("profile", "email", *input.Email)
		}
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Summary != nil {
		p.Summary = input.Summary
	}
	if input.Education != nil {
		p.Education = *input.Education
		if p.Education == nil {
			p.Education = []profile.EducationEntry{}
		}
	}
	if input.Skills != nil {
		p.Skills = *input.Skills
		if p.Skills == nil {
			p.Skills = []string{}
		}
	}
	if input.Links != nil {
		p.Links = *input.Links
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	agg, err := loadAggregate(ctx, uc.profileRepo, uc.projectRepo, uc.workRepo, p.ID)
	if err != nil {
		return nil, err
	}

	afterProfileWrite(ctx, uc.skillsCache, uc.publisher, uc.logger, event.ProfileEvent{
		EventType:  event.ProfileEventTypeUpdated,
		ProfileID:  p.ID,
		Email:      p.Email,
		OccurredAt: p.UpdatedAt,
	})

	return &UpdateProfileOutput{Aggregate: agg}, nil
}
