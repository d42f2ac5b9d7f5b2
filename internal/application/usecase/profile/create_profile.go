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

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	publisher   event.Publisher
	skillsCache skill.Cache
	logger      logger.Logger
}

func NewCreateProfileUseCase(
	pRepo profile.Repository,
	prjRepo project.Repository,
	wRepo work.Repository,
	publisher event.Publisher,
	skillsCache skill.Cache,
	log logger.Logger,
) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: pRepo,
		projectRepo: prjRepo,
		workRepo:    wRepo,
		publisher:   publisher,
		skillsCache: skillsCache,
		logger:      log,
	}
}

type ProjectInput struct {
	Title       string
	Description string
	Links       project.Links
	Skills      []string
}

type WorkInput struct {
	Role       string
	Company    string
	Location   *string
	StartDate  *string
	EndDate    *string
	Summary    *string
	Highlights []work.Highlight
}

type CreateProfileInput struct {
	// UserID binds the profile to the authenticated account when present.
	UserID    *uuid.UUID
	Name      string
	Email     string
	Summary   *string
	Education []profile.EducationEntry
	Skills    []string
	Links     profile.Links
	Projects  []ProjectInput
	Work      []WorkInput
}

type CreateProfileOutput struct {
	Aggregate *Aggregate
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	if input.UserID != nil {
		existing, err := uc.profileRepo.GetByUserID(ctx, *input.UserID)
		if err != nil && !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflict("profile", "account", input.UserID.String())
		}
	}

	existing, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("profile", "email", input.Email)
	}

	now := time.Now().UTC()

	newProfile := &profile.Profile{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Summary:   input.Summary,
		Education: input.Education,
		Skills:    input.Skills,
		Links:     input.Links,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if newProfile.Education == nil {
		newProfile.Education = []profile.EducationEntry{}
	}
	if newProfile.Skills == nil {
		newProfile.Skills = []string{}
	}

	// The repo maps a lost email race to the same conflict as the pre-check.
	if err := uc.profileRepo.Create(ctx, newProfile); err != nil {
		return nil, err
	}

	projects := make([]*project.Project, len(input.Projects))
	for i, in := range input.Projects {
		skills := in.Skills
		if skills == nil {
			skills = []string{}
		}
		projects[i] = &project.Project{
			ID:          uuid.New(),
			ProfileID:   newProfile.ID,
			Title:       in.Title,
			Description: in.Description,
			Links:       in.Links,
			Skills:      skills,
			CreatedAt:   now,
		}
	}
	if err := uc.projectRepo.CreateBatch(ctx, projects); err != nil {
		return nil, err
	}

	experiences := make([]*work.WorkExperience, len(input.Work))
	for i, in := range input.Work {
		highlights := in.Highlights
		if highlights == nil {
			highlights = []work.Highlight{}
		}
		experiences[i] = &work.WorkExperience{
			ID:         uuid.New(),
			ProfileID:  newProfile.ID,
			Role:       in.Role,
			Company:    in.Company,
			Location:   in.Location,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Summary:    in.Summary,
			Highlights: highlights,
			CreatedAt:  now,
		}
	}
	if err := uc.workRepo.CreateBatch(ctx, experiences); err != nil {
		return nil, err
	}

	agg, err := loadAggregate(ctx, uc.profileRepo, uc.projectRepo, uc.workRepo, newProfile.ID)
	if err != nil {
		return nil, err
	}

	afterProfileWrite(ctx, uc.skillsCache, uc.publisher, uc.logger, event.ProfileEvent{
		EventType:  event.ProfileEventTypeCreated,
		ProfileID:  newProfile.ID,
		Email:      newProfile.Email,
		OccurredAt: now,
	})

	return &CreateProfileOutput{Aggregate: agg}, nil
}
