package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/J33rry/predusk/internal/domain/event"
	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/pkg/logger"
)

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	publisher   event.Publisher
	skillsCache skill.Cache
	logger      logger.Logger
}

func NewDeleteProfileUseCase(
	pRepo profile.Repository,
	publisher event.Publisher,
	skillsCache skill.Cache,
	log logger.Logger,
) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: pRepo,
		publisher:   publisher,
		skillsCache: skillsCache,
		logger:      log,
	}
}

type DeleteProfileInput struct {
	ProfileID uuid.UUID
}

// Execute removes the profile; owned projects and work experiences cascade
// at the storage layer.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.profileRepo.Delete(ctx, input.ProfileID); err != nil {
		return err
	}

	afterProfileWrite(ctx, uc.skillsCache, uc.publisher, uc.logger, event.ProfileEvent{
		EventType:  event.ProfileEventTypeDeleted,
		ProfileID:  input.ProfileID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
